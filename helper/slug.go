package helper

import (
	"fmt"
	"time"

	"resto_manager/model"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// MakeSlug maps a display name to its URL-safe form: lowercase, diacritics
// stripped, everything outside [a-z0-9-] collapsed to single hyphens.
func MakeSlug(name string) string {
	return slug.Make(name)
}

// GenerateUniqueRestaurantSlug attempts the base slug and, on collision,
// derives one disambiguated slug with a short time-based suffix. Exactly one
// retry; a second collision surfaces as an error instead of looping.
func GenerateUniqueRestaurantSlug(tx *gorm.DB, name string, excludeId uint) (string, error) {
	base := MakeSlug(name)
	if base == "" {
		return "", fmt.Errorf("name %q produces an empty slug", name)
	}

	taken, err := slugTaken(tx, base, excludeId)
	if err != nil {
		return "", err
	}
	if !taken {
		return base, nil
	}

	retry := fmt.Sprintf("%s-%d", base, time.Now().Unix()%10000)
	taken, err = slugTaken(tx, retry, excludeId)
	if err != nil {
		return "", err
	}
	if taken {
		return "", fmt.Errorf("slug %q already taken", retry)
	}
	return retry, nil
}

func slugTaken(tx *gorm.DB, candidate string, excludeId uint) (bool, error) {
	var count int64
	query := tx.Model(&model.Restaurant{}).Where("slug = ?", candidate)
	if excludeId != 0 {
		query = query.Where("id != ?", excludeId)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
