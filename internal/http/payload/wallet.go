package payload

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/jellydator/validation"
)

type WalletRequest struct {
	Address    string
	StartBlock string
}

func (wr WalletRequest) Validate() error {
	addressRegex, err := regexp.Compile(`^0x[a-fA-F0-9]{40}$`)
	if err != nil {
		return fmt.Errorf("compile regex: %w", err)
	}
	blockRegex, err := regexp.Compile(`^[0-9]+$`)
	if err != nil {
		return fmt.Errorf("compile regex: %w", err)
	}

	return validation.ValidateStruct(&wr,
		validation.Field(&wr.Address, validation.Required, validation.Match(addressRegex)),
		validation.Field(&wr.StartBlock, validation.Match(blockRegex)),
	)
}

// StartBlockNumber returns the parsed start block; Validate guarantees the
// raw value is either empty or all digits.
func (wr WalletRequest) StartBlockNumber() int64 {
	if wr.StartBlock == "" {
		return 0
	}
	block, err := strconv.ParseInt(wr.StartBlock, 10, 64)
	if err != nil {
		return 0
	}
	return block
}

type BlockRangeRequest struct {
	Address   string
	FromBlock string
	ToBlock   string
}

func (br BlockRangeRequest) Validate() error {
	addressRegex, err := regexp.Compile(`^0x[a-fA-F0-9]{40}$`)
	if err != nil {
		return fmt.Errorf("compile regex: %w", err)
	}
	blockRegex, err := regexp.Compile(`^[0-9]+$`)
	if err != nil {
		return fmt.Errorf("compile regex: %w", err)
	}

	if err := validation.ValidateStruct(&br,
		validation.Field(&br.Address, validation.Required, validation.Match(addressRegex)),
		validation.Field(&br.FromBlock, validation.Match(blockRegex)),
		validation.Field(&br.ToBlock, validation.Match(blockRegex)),
	); err != nil {
		return err
	}

	from, to := br.Blocks()
	if br.ToBlock != "" && to < from {
		return fmt.Errorf("toBlock %d is before fromBlock %d", to, from)
	}
	return nil
}

// Blocks returns the parsed range; an empty toBlock means "latest".
func (br BlockRangeRequest) Blocks() (int64, int64) {
	from := int64(0)
	if br.FromBlock != "" {
		from, _ = strconv.ParseInt(br.FromBlock, 10, 64)
	}
	to := int64(latestBlockSentinel)
	if br.ToBlock != "" {
		to, _ = strconv.ParseInt(br.ToBlock, 10, 64)
	}
	return from, to
}

const latestBlockSentinel = 99999999

type BalanceAtDateRequest struct {
	Address string
	Date    string
}

func (bd BalanceAtDateRequest) Validate() error {
	addressRegex, err := regexp.Compile(`^0x[a-fA-F0-9]{40}$`)
	if err != nil {
		return fmt.Errorf("compile regex: %w", err)
	}

	return validation.ValidateStruct(&bd,
		validation.Field(&bd.Address, validation.Required, validation.Match(addressRegex)),
		validation.Field(&bd.Date, validation.Required, validation.Date("2006-01-02")),
	)
}
