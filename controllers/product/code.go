package productcontroller

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/gitmibrahim/soul/models"
	"gorm.io/gorm"
)

var productCodePattern = regexp.MustCompile(`SO-(\d+)`)

// NextProductCode scans every existing product code, takes the highest
// numeric suffix and returns it plus one, zero-padded to four digits
// (SO-0001 for an empty catalog). Codes are assigned once and never reused,
// so the sequence is based on the max, not the count. The unique index on
// product_code plus the retry in CreateProductRecord covers concurrent
// creations racing this scan.
func NextProductCode(db *gorm.DB) (string, error) {
	var codes []string
	if err := db.Model(&models.Product{}).Pluck("product_code", &codes).Error; err != nil {
		return "", err
	}

	max := 0
	for _, code := range codes {
		match := productCodePattern.FindStringSubmatch(code)
		if match == nil {
			continue
		}
		n, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}

	return fmt.Sprintf("SO-%04d", max+1), nil
}
