// internal/wizard/review.go
package wizard

import (
    "brandtruth/internal/models"
)

// SelectPrimaryVariant names the product decision that only one ad is ever
// pushed to Meta even when several are approved: the first approved variant
// in creation order wins. Callers must not treat this as an accident of
// array indexing — change it here if the product ever publishes all
// approved variants.
func SelectPrimaryVariant(variants []models.AdVariant) (models.AdVariant, error) {
    for _, v := range variants {
        if v.Status == models.VariantStatusApproved {
            return v, nil
        }
    }
    return models.AdVariant{}, ErrNoApprovedVariants
}
