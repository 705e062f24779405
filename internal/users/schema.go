package users

import (
	"github.com/devisio-app/devisio-backend/internal/schema"
	"github.com/devisio-app/devisio-backend/pkg/enums"
)

// profileUpdateSchema validates the deep profile payload. Everything is
// optional; an explicit null clears the column. SIRET, APE and TVA bounds
// follow the official French formats.
func profileUpdateSchema() schema.Schema {
	return schema.Schema{
		{Name: "first_name", Rule: schema.String().MaxLen(50).Optional().Nullable()},
		{Name: "last_name", Rule: schema.String().MaxLen(50).Optional().Nullable()},
		{Name: "company_name", Rule: schema.String().MaxLen(100).Optional().Nullable()},
		{Name: "company_address", Rule: schema.String().MaxLen(150).Optional().Nullable()},
		{Name: "siret", Rule: schema.String().MinLen(14).MaxLen(14).Optional().Nullable()},
		{Name: "ape_code", Rule: schema.String().MaxLen(6).Optional().Nullable()},
		{Name: "rcs_code", Rule: schema.String().MaxLen(30).Optional().Nullable()},
		{Name: "tva_number", Rule: schema.String().MaxLen(13).Optional().Nullable()},
		{Name: "company_type", Rule: schema.Enum(enums.CompanyTypeValues()...).Optional()},
		{Name: "quote_infos", Rule: schema.String().MaxLen(1000).Optional().Nullable()},
	}
}

// bindProfileUpdate keeps only the columns the payload carried.
func bindProfileUpdate(m map[string]any) map[string]any {
	updates := map[string]any{}
	for _, column := range []string{
		"first_name", "last_name", "company_name", "company_address",
		"siret", "ape_code", "rcs_code", "tva_number", "company_type", "quote_infos",
	} {
		if schema.Has(m, column) {
			updates[column] = m[column]
		}
	}
	return updates
}
