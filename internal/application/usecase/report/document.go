package report

import (
	"encoding/json"
	"fmt"

	"github.com/madrasah-erp/finance/internal/domain/entity"
	domainerror "github.com/madrasah-erp/finance/internal/domain/error"
)

// EncodeDocument serializes a report document for storage.
func EncodeDocument(doc *entity.ReportDocument) (string, error) {
	if doc.SchemaVersion == 0 {
		doc.SchemaVersion = entity.ReportSchemaVersion
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to encode report document: %w", err)
	}
	return string(data), nil
}

// DecodeDocument parses a stored report document and checks its schema version.
func DecodeDocument(data string) (*entity.ReportDocument, error) {
	var doc entity.ReportDocument
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		return nil, fmt.Errorf("failed to decode report document: %w", err)
	}

	if doc.SchemaVersion < 1 || doc.SchemaVersion > entity.ReportSchemaVersion {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeUnsupportedSchemaVersion,
			fmt.Sprintf("report document has schema version %d", doc.SchemaVersion),
			domainerror.ErrUnsupportedSchemaVersion,
		)
	}

	return &doc, nil
}
