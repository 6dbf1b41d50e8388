// file: internals/features/rundowns/service/ordering.go
package service

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// assignRanks writes rank 0..N-1 in list order as a single bulk
// UPDATE ... SET rank = CASE id ... END statement. Callers run it inside a
// transaction; a partial renumbering is never observable.
func assignRanks(tx *gorm.DB, table, idColumn, rankColumn string, orderedIDs []uuid.UUID) error {
	if len(orderedIDs) == 0 {
		return nil
	}

	var sb strings.Builder
	args := make([]interface{}, 0, 2*len(orderedIDs)+1)

	sb.WriteString("UPDATE ")
	sb.WriteString(table)
	sb.WriteString(" SET ")
	sb.WriteString(rankColumn)
	sb.WriteString(" = CASE ")
	sb.WriteString(idColumn)
	for i, id := range orderedIDs {
		sb.WriteString(" WHEN ? THEN ?")
		args = append(args, id, i)
	}
	sb.WriteString(" END WHERE ")
	sb.WriteString(idColumn)
	sb.WriteString(" IN ?")
	args = append(args, orderedIDs)

	return tx.Exec(sb.String(), args...).Error
}

// checkReorderSet verifies that supplied is a permutation of current: same
// size, no duplicates, no missing or foreign IDs.
func checkReorderSet(current, supplied []uuid.UUID) error {
	if len(current) != len(supplied) {
		return ErrInvalidReorderSet
	}
	seen := make(map[uuid.UUID]struct{}, len(supplied))
	for _, id := range supplied {
		if _, dup := seen[id]; dup {
			return ErrInvalidReorderSet
		}
		seen[id] = struct{}{}
	}
	for _, id := range current {
		if _, ok := seen[id]; !ok {
			return ErrInvalidReorderSet
		}
	}
	return nil
}
