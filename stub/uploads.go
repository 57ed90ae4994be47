package stub

import (
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// storeUpload saves an uploaded file under the stub's upload dir and
// returns the URL a real backend would hand back after pushing to its
// CDN.
func (s *Server) storeUpload(c *gin.Context, file *multipart.FileHeader) string {
	name := uuid.New().String() + "-" + filepath.Base(file.Filename)
	dir := filepath.Join(os.TempDir(), "khatapro-stub-uploads")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		s.logger.Warn("failed to create upload dir", zap.Error(err))
	} else if err := c.SaveUploadedFile(file, filepath.Join(dir, name)); err != nil {
		s.logger.Warn("failed to save upload", zap.Error(err))
	}
	return "https://cdn.khatapro.in/uploads/" + name
}
