package repositories

import "github.com/vsinha/bomtree/pkg/domain/entities"

// TableSource provides the raw records of a parts list. Headers are already
// mapped to canonical columns and missing columns are present as empty cells.
type TableSource interface {
	Load(filename string) ([]entities.RawRecord, error)
}
