package quotes

import (
	"time"

	"github.com/devisio-app/devisio-backend/internal/schema"
	"github.com/devisio-app/devisio-backend/pkg/enums"
)

// Payload schemas for the quote aggregate. Bounds mirror the column
// constraints so a payload that validates here also fits the tables.

func customerSchema() schema.Schema {
	return schema.Schema{
		{Name: "id", Rule: schema.Number().Min(1).Optional()},
		{Name: "first_name", Rule: schema.String().MaxLen(50).Optional().Nullable()},
		{Name: "last_name", Rule: schema.String().MaxLen(50).Optional().Nullable()},
		{Name: "street", Rule: schema.String().MaxLen(40).Optional().Nullable()},
		{Name: "city", Rule: schema.String().MaxLen(50).Optional().Nullable()},
		{Name: "zip", Rule: schema.Number().Min(0).Max(99999).Optional().Nullable()},
		{Name: "phone", Rule: schema.String().MaxLen(20).Optional().Nullable()},
		{Name: "email", Rule: schema.Email().MaxLen(30).Optional().Nullable()},
	}
}

func elementSchema() schema.Schema {
	return schema.Schema{
		{Name: "id", Rule: schema.Number().Min(1).Optional()},
		{Name: "work_id", Rule: schema.Number().Min(1)},
		{Name: "quote_section", Rule: schema.String().MaxLen(25)},
		{Name: "vat", Rule: schema.Enum(enums.VATRateValues()...)},
		{Name: "discount", Rule: schema.Number().Float().Min(0).Max(100)},
		{Name: "quantity", Rule: schema.Number().Min(1)},
	}
}

func mediaCreateSchema() schema.Schema {
	return schema.Schema{
		{Name: "path_name", Rule: schema.String().MaxLen(50)},
		{Name: "alt_text", Rule: schema.String().MaxLen(100).Optional().Nullable()},
	}
}

func mediaUpdateSchema() schema.Schema {
	return schema.Schema{
		{Name: "id", Rule: schema.Number().Min(1)},
		{Name: "path_name", Rule: schema.String().MaxLen(50).Optional()},
		{Name: "alt_text", Rule: schema.String().MaxLen(100).Optional().Nullable()},
	}
}

// createSchema depends on now because an expiry date in the past is
// rejected at creation only.
func createSchema(now time.Time) schema.Schema {
	return schema.Schema{
		{Name: "name", Rule: schema.String().MaxLen(50).Optional().Nullable()},
		{Name: "general_infos", Rule: schema.String().MaxLen(1000).Optional().Nullable()},
		{Name: "global_discount", Rule: schema.Number().Float().Min(0).Max(100).Optional()},
		{Name: "status", Rule: schema.Enum(enums.QuoteStatusValues()...).Optional()},
		{Name: "expires_at", Rule: schema.Date().MinDate(now).Optional().Nullable()},
		{Name: "customer", Rule: schema.Object(customerSchema()).Optional().Nullable()},
		{Name: "quote_elements", Rule: schema.Array(schema.Object(elementSchema())).Optional()},
		{Name: "quote_medias", Rule: schema.Array(schema.Object(mediaCreateSchema())).Optional()},
	}
}

func updateSchema() schema.Schema {
	return schema.Schema{
		{Name: "name", Rule: schema.String().MaxLen(50).Optional().Nullable()},
		{Name: "general_infos", Rule: schema.String().MaxLen(1000).Optional().Nullable()},
		{Name: "global_discount", Rule: schema.Number().Float().Min(0).Max(100).Optional()},
		{Name: "status", Rule: schema.Enum(enums.QuoteStatusValues()...).Optional()},
		{Name: "expires_at", Rule: schema.Date().Optional().Nullable()},
		{Name: "customer", Rule: schema.Object(customerSchema()).Optional()},
		{Name: "quote_elements", Rule: schema.Array(schema.Object(elementSchema())).Optional()},
		{Name: "quote_medias", Rule: schema.Array(schema.Object(mediaUpdateSchema())).Optional()},
	}
}

func bindCustomer(m map[string]any) *CustomerInput {
	input := &CustomerInput{
		ID:        schema.GetIntPtr(m, "id"),
		FirstName: schema.GetStringPtr(m, "first_name"),
		LastName:  schema.GetStringPtr(m, "last_name"),
		Street:    schema.GetStringPtr(m, "street"),
		City:      schema.GetStringPtr(m, "city"),
		Phone:     schema.GetStringPtr(m, "phone"),
		Email:     schema.GetStringPtr(m, "email"),
	}
	if zip, ok := schema.GetInt(m, "zip"); ok {
		converted := int(zip)
		input.Zip = &converted
	}
	input.Fields = map[string]any{}
	for _, column := range []string{"first_name", "last_name", "street", "city", "zip", "phone", "email"} {
		if schema.Has(m, column) {
			input.Fields[column] = m[column]
		}
	}
	return input
}

func bindElements(items []map[string]any) []ElementInput {
	out := make([]ElementInput, 0, len(items))
	for _, m := range items {
		element := ElementInput{
			ID:           schema.GetIntPtr(m, "id"),
			QuoteSection: mustString(m, "quote_section"),
			VAT:          enums.VATRate(mustString(m, "vat")),
		}
		element.WorkID, _ = schema.GetInt(m, "work_id")
		if discount, ok := schema.GetFloat(m, "discount"); ok {
			element.Discount = discount
		}
		if quantity, ok := schema.GetInt(m, "quantity"); ok {
			element.Quantity = int(quantity)
		}
		out = append(out, element)
	}
	return out
}

func bindMedias(items []map[string]any) []MediaInput {
	out := make([]MediaInput, 0, len(items))
	for _, m := range items {
		media := MediaInput{
			ID:       schema.GetIntPtr(m, "id"),
			PathName: schema.GetStringPtr(m, "path_name"),
			AltText:  schema.GetStringPtr(m, "alt_text"),
			Fields:   map[string]any{},
		}
		for _, column := range []string{"path_name", "alt_text"} {
			if schema.Has(m, column) {
				media.Fields[column] = m[column]
			}
		}
		out = append(out, media)
	}
	return out
}

func bindCreateInput(m map[string]any) CreateInput {
	input := CreateInput{
		Name:         schema.GetStringPtr(m, "name"),
		GeneralInfos: schema.GetStringPtr(m, "general_infos"),
		Status:       enums.QuoteStatusDraft,
		ExpiresAt:    schema.GetTimePtr(m, "expires_at"),
	}
	if discount, ok := schema.GetFloat(m, "global_discount"); ok {
		input.GlobalDiscount = discount
	}
	if status, ok := schema.GetString(m, "status"); ok {
		input.Status = enums.QuoteStatus(status)
	}
	if customer, ok := schema.GetMap(m, "customer"); ok {
		input.Customer = bindCustomer(customer)
	}
	if elements, ok := schema.GetObjectSlice(m, "quote_elements"); ok {
		input.Elements = bindElements(elements)
	}
	if medias, ok := schema.GetObjectSlice(m, "quote_medias"); ok {
		input.Medias = bindMedias(medias)
	}
	return input
}

// bindUpdateInput keeps scalar quote columns as a column map so the update
// touches only what the caller sent. An explicit null clears the column.
func bindUpdateInput(m map[string]any) UpdateInput {
	input := UpdateInput{Fields: map[string]any{}}
	for _, column := range []string{"name", "general_infos", "global_discount", "status", "expires_at"} {
		if schema.Has(m, column) {
			input.Fields[column] = m[column]
		}
	}
	if customer, ok := schema.GetMap(m, "customer"); ok {
		input.Customer = bindCustomer(customer)
	}
	if elements, ok := schema.GetObjectSlice(m, "quote_elements"); ok {
		input.Elements = bindElements(elements)
		input.SyncElements = true
	}
	if medias, ok := schema.GetObjectSlice(m, "quote_medias"); ok {
		input.Medias = bindMedias(medias)
	}
	return input
}

func mustString(m map[string]any, key string) string {
	value, _ := schema.GetString(m, key)
	return value
}
