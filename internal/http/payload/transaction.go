package payload

import (
	"fmt"
	"regexp"

	"github.com/jellydator/validation"
)

type TransactionStatusRequest struct {
	Hash string
}

func (tr TransactionStatusRequest) Validate() error {
	hashRegex, err := regexp.Compile(`^0x[a-fA-F0-9]{64}$`)
	if err != nil {
		return fmt.Errorf("compile regex: %w", err)
	}

	return validation.ValidateStruct(&tr,
		validation.Field(&tr.Hash, validation.Required, validation.Match(hashRegex)),
	)
}
