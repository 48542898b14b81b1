package common

import (
	"fmt"
)

// Every error below is a configuration defect: the generated bytes go
// on-chain, so nothing is retried, truncated or corrected.

type SizeLimitExceededError struct {
	Category string
	Size     int
	Limit    int
}

func (e *SizeLimitExceededError) Error() string {
	return fmt.Sprintf("%s: %d bytes exceeds the witness size limit of %d bytes by %d", e.Category, e.Size, e.Limit, e.Size-e.Limit)
}

type BucketOverflowError struct {
	Category string
	Index    int
	Count    int
	Capacity int
}

func (e *BucketOverflowError) Error() string {
	return fmt.Sprintf("%s: bucket %d holds %d accounts, capacity is %d (over by %d), the bucket count or capacity needs re-tuning", e.Category, e.Index, e.Count, e.Capacity, e.Count-e.Capacity)
}

type InvalidCharacterError struct {
	Category string
	Item     string
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("%s: item %q (0x%x) contains a 0x00 byte", e.Category, e.Item, []byte(e.Item))
}

type InvalidParametersError struct {
	Reason string
}

func (e *InvalidParametersError) Error() string {
	return "invalid parameters: " + e.Reason
}

type InputUnreadableError struct {
	Category string
	Path     string
	Err      error
}

func (e *InputUnreadableError) Error() string {
	if e.Category == "" {
		return fmt.Sprintf("input %s is unreadable: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("%s: input %s is unreadable: %v", e.Category, e.Path, e.Err)
}

func (e *InputUnreadableError) Unwrap() error { return e.Err }
