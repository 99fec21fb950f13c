package helper

import (
	"fmt"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"nutriwell_backend/internals/configs"
)

const maxImageWidth = 1600

var reUnsafeFilename = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func sanitizeFilename(filename string) string {
	return reUnsafeFilename.ReplaceAllString(filename, "_")
}

// GenerateUniqueFilename: tanggal + uuid + nama asli (sudah disanitasi).
func GenerateUniqueFilename(originalFilename string) string {
	timestamp := time.Now().Format("20060102")
	base := strings.TrimSuffix(sanitizeFilename(originalFilename), filepath.Ext(originalFilename))
	if base == "" {
		base = "upload"
	}
	return fmt.Sprintf("%s-%s-%s.webp", timestamp, uuid.New().String(), base)
}

// SaveImage menyimpan upload gambar ke UPLOAD_DIR/<folder>/ sebagai webp
// (di-resize maksimal 1600px lebar). File ditulis DULU; baris DB menyusul —
// kalau insert gagal, panggil RemoveByURL untuk bersihkan file yatim.
// Return: URL publik (MEDIA_BASE_URL/<folder>/<file>).
func SaveImage(folder string, fileHeader *multipart.FileHeader) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("gagal membuka file gambar: %w", err)
	}
	defer src.Close()

	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("file bukan gambar yang valid: %w", err)
	}
	if img.Bounds().Dx() > maxImageWidth {
		img = imaging.Resize(img, maxImageWidth, 0, imaging.Lanczos)
	}

	dir := filepath.Join(configs.UploadDir, filepath.FromSlash(folder))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("gagal membuat folder upload: %w", err)
	}

	filename := GenerateUniqueFilename(fileHeader.Filename)
	fullPath := filepath.Join(dir, filename)

	out, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("gagal menulis file: %w", err)
	}
	defer out.Close()

	if err := webp.Encode(out, img, &webp.Options{Quality: 85}); err != nil {
		_ = os.Remove(fullPath)
		return "", fmt.Errorf("gagal encode webp: %w", err)
	}

	return configs.MediaBaseURL + "/" + path.Join(folder, filename), nil
}

// RemoveByURL menghapus file media berdasarkan URL publiknya.
// Dipanggil saat insert baris gagal setelah file tertulis, atau saat ganti gambar.
func RemoveByURL(publicURL string) error {
	rel := strings.TrimPrefix(publicURL, configs.MediaBaseURL+"/")
	if rel == publicURL || rel == "" {
		return fmt.Errorf("URL media tidak dikenal: %s", publicURL)
	}
	// jaga-jaga path traversal
	rel = path.Clean(rel)
	if strings.HasPrefix(rel, "..") {
		return fmt.Errorf("path media tidak valid: %s", rel)
	}
	return os.Remove(filepath.Join(configs.UploadDir, filepath.FromSlash(rel)))
}

// ImageSize cap upload (dipakai validasi di controller): 5MB.
const MaxUploadBytes = 5 << 20

func ValidateUploadSize(fileHeader *multipart.FileHeader) error {
	if fileHeader.Size > MaxUploadBytes {
		return fmt.Errorf("ukuran file melebihi %dMB", MaxUploadBytes>>20)
	}
	return nil
}
