package helper

import (
	"log"
	"os"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
)

func InitCloudinary() (*cloudinary.Cloudinary, error) {
	cld, err := cloudinary.NewFromParams(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"),
	)
	if err != nil {
		log.Printf("Cloudinary init failed: %v", err)
		return nil, err
	}
	return cld, nil
}

// ExtractPublicID recovers the upload public id from a Cloudinary secure
// URL ("…/upload/v123/dishes/abc.jpg" -> "dishes/abc") so the old asset can
// be destroyed when replaced.
func ExtractPublicID(url string) string {
	parts := strings.Split(url, "/upload/")
	if len(parts) != 2 {
		return ""
	}
	path := parts[1]
	if i := strings.Index(path, "/"); i != -1 && strings.HasPrefix(path, "v") {
		path = path[i+1:]
	}
	if i := strings.LastIndex(path, "."); i != -1 {
		path = path[:i]
	}
	return path
}
