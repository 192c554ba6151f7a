package cafe

import (
	"context"

	"github.com/BruksfildServices01/cafe-api/internal/httperr"
)

type ImportResult struct {
	Added   int
	Skipped int
}

// Import adds each row with the same rules as Add. Rows rejected for bad
// input or a duplicate name are skipped; any other failure stops the import.
func (s *Service) Import(
	ctx context.Context,
	rows []map[string]string,
) (ImportResult, error) {

	var res ImportResult
	for _, row := range rows {
		_, err := s.Add(ctx, FormFields(row))
		switch {
		case err == nil:
			res.Added++
		case isRowError(err):
			res.Skipped++
		default:
			return res, err
		}
	}
	return res, nil
}

func isRowError(err error) bool {
	return httperr.IsBusiness(err, httperr.CodeMissingField) ||
		httperr.IsBusiness(err, httperr.CodeInvalidField) ||
		httperr.IsBusiness(err, httperr.CodeDuplicateName)
}
