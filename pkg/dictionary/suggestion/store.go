// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package suggestion

import "context"

// Repository is the storage port of the suggestion domain.
type Repository interface {
	List(ctx context.Context, request Request) ([]Suggestion, error)
}
