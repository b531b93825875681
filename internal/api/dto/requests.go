package dto

// CalculateCommissionRequest is the body of POST /api/commissions.
type CalculateCommissionRequest struct {
	Price          float64  `json:"price"`
	LeadGenerators []string `json:"lead_generators"`
	Telemarketing  string   `json:"telemarketing"`
	Conversion     string   `json:"conversion"`
	Date           string   `json:"date,omitempty"` // YYYY-MM-DD, defaults to today
}

// CalculateCommissionSchema is the JSON schema the request body must satisfy
// before it is decoded. The price maximum is commission.MaxPrice. Business rules (roster membership, role selection,
// duplicates) are checked afterwards by the commission service.
const CalculateCommissionSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"price": {"type": "number", "exclusiveMinimum": 0, "maximum": 1000000000000000},
		"lead_generators": {
			"type": "array",
			"items": {"type": "string"}
		},
		"telemarketing": {"type": "string"},
		"conversion": {"type": "string"},
		"date": {"type": "string", "format": "date"}
	},
	"additionalProperties": false
}`
