package services

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"buildtrack/models"
)

// ExtractionPrompt is the fixed instruction sent alongside a quotation
// document to the document-AI service.
const ExtractionPrompt = `You are analyzing a South African building/construction quotation document.
Extract all cost information and return it as a JSON object.

Return ONLY a valid JSON object with this exact structure (no other text, no markdown fences):

{
  "supplierName": "string or null",
  "supplierContact": "string or null - contact person name",
  "supplierEmail": "string or null",
  "supplierPhone": "string or null",
  "quotationNumber": "string or null - the quote/reference number",
  "quotationDate": "YYYY-MM-DD or null",
  "validUntil": "YYYY-MM-DD or null - quote validity/expiry date",
  "tradeCategory": "one of the allowed values below, or null",
  "lineItems": [
    {
      "description": "string - description of the work/material",
      "unit": "string - unit of measurement (m2, m3, m, no, kg, item, day, sum, l, allow)",
      "quantity": 0,
      "unitRate": 0,
      "amount": 0
    }
  ],
  "subtotal": 0,
  "vatAmount": 0,
  "totalInclVat": 0,
  "notes": "string or null - any terms, conditions, or additional notes",
  "confidence": "high or medium or low",
  "warnings": ["array of strings describing any issues"]
}

Allowed tradeCategory values:
general_builder, plumber, electrician, roofing, tiling, painting, carpentry, glazing, waterproofing, plastering, landscaping, structural_steel, hvac, security, other

Important rules:
- All monetary values must be numeric (no currency symbols) and in South African Rand (ZAR)
- South African VAT is 15%
- For each line item: amount should equal quantity × unitRate
- If the document only shows a total without line items, create a single line item with description "Total as per quotation" and the total as the amount
- If quantity or unitRate is not clear, set quantity=1 and unitRate=amount
- subtotal is the sum of all line item amounts (excluding VAT)
- If only a VAT-inclusive total is shown, back-calculate: subtotal = totalInclVat / 1.15, vatAmount = totalInclVat - subtotal
- Set confidence to "high" if all data is clearly readable, "medium" if some fields are uncertain, "low" if the document is unclear or partially readable
- Add warnings for anything that could not be determined or seems uncertain
- Parse dates in any format and convert to YYYY-MM-DD
- Look for supplier details in letterhead, header, or footer areas
- Common SA units: m² (square meters), m³ (cubic meters), m (linear meters), no (number/each), kg, item, day, sum (lump sum), l (litres), allow (allowance)`

var codeFencePattern = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

// NormalizeResponse turns raw document-AI response text into a validated
// ExtractedQuotationData. The response is untrusted: it may wrap the JSON in
// markdown fences or prose, omit fields, or return the wrong types, so every
// field is coerced independently. The function is total and never fails: an
// unparseable response becomes a low-confidence result with fixed warnings.
func NormalizeResponse(text string) models.ExtractedQuotationData {
	jsonStr := strings.TrimSpace(text)

	if match := codeFencePattern.FindStringSubmatch(jsonStr); match != nil {
		jsonStr = strings.TrimSpace(match[1])
	}

	start := strings.Index(jsonStr, "{")
	end := strings.LastIndex(jsonStr, "}")
	if start >= 0 && end > start {
		jsonStr = jsonStr[start : end+1]
	}

	var parsed map[string]any
	if err := json.Unmarshal([]byte(jsonStr), &parsed); err != nil {
		return lowConfidenceResult(
			"Could not parse the AI response. The document may be too complex or unclear.",
			"Please enter the quotation details manually.",
		)
	}

	result := emptyExtraction(normalizeConfidence(parsed["confidence"]))
	result.SupplierName = stringOrNil(parsed["supplierName"])
	result.SupplierContact = stringOrNil(parsed["supplierContact"])
	result.SupplierEmail = stringOrNil(parsed["supplierEmail"])
	result.SupplierPhone = stringOrNil(parsed["supplierPhone"])
	result.QuotationNumber = stringOrNil(parsed["quotationNumber"])
	result.QuotationDate = stringOrNil(parsed["quotationDate"])
	result.ValidUntil = stringOrNil(parsed["validUntil"])
	result.TradeCategory = stringOrNil(parsed["tradeCategory"])
	result.Subtotal = numberOrNil(parsed["subtotal"])
	result.VATAmount = numberOrNil(parsed["vatAmount"])
	result.TotalInclVAT = numberOrNil(parsed["totalInclVat"])
	result.Notes = stringOrNil(parsed["notes"])
	result.LineItems = normalizeLineItems(parsed["lineItems"])
	result.Warnings = normalizeWarnings(parsed["warnings"])
	return result
}

// stringOrNil passes v through only when it is a JSON string.
func stringOrNil(v any) *string {
	if s, ok := v.(string); ok {
		return &s
	}
	return nil
}

// numberOrNil passes v through only when it is a JSON number. Numeric
// strings are deliberately rejected at the top level.
func numberOrNil(v any) *float64 {
	if n, ok := v.(float64); ok {
		return &n
	}
	return nil
}

// normalizeConfidence whitelists the confidence value, defaulting to medium.
func normalizeConfidence(v any) models.Confidence {
	if s, ok := v.(string); ok {
		switch models.Confidence(s) {
		case models.ConfidenceHigh, models.ConfidenceMedium, models.ConfidenceLow:
			return models.Confidence(s)
		}
	}
	return models.ConfidenceMedium
}

// coerceString stringifies v, substituting fallback for missing or empty
// values.
func coerceString(v any, fallback string) string {
	switch s := v.(type) {
	case string:
		if s == "" {
			return fallback
		}
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	default:
		return fallback
	}
}

// coerceNumber converts v to a number, substituting fallback when v is
// missing, unparseable or zero. Numeric strings are accepted here: line
// items frequently come back with quoted quantities.
func coerceNumber(v any, fallback float64) float64 {
	switch n := v.(type) {
	case float64:
		if n == 0 {
			return fallback
		}
		return n
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil || parsed == 0 {
			return fallback
		}
		return parsed
	case bool:
		if n {
			return 1
		}
		return fallback
	default:
		return fallback
	}
}

// normalizeLineItems coerces the lineItems array element-wise. Amounts are
// NOT recomputed from quantity and rate: a missing amount stays 0 so review
// surfaces the gap instead of silently inventing a figure.
func normalizeLineItems(v any) []models.ExtractedLineItem {
	arr, ok := v.([]any)
	if !ok {
		return []models.ExtractedLineItem{}
	}

	items := make([]models.ExtractedLineItem, 0, len(arr))
	for _, el := range arr {
		obj, ok := el.(map[string]any)
		if !ok {
			continue
		}
		items = append(items, models.ExtractedLineItem{
			Description: coerceString(obj["description"], ""),
			Unit:        coerceString(obj["unit"], "item"),
			Quantity:    coerceNumber(obj["quantity"], 1),
			UnitRate:    coerceNumber(obj["unitRate"], 0),
			Amount:      coerceNumber(obj["amount"], 0),
		})
	}
	return items
}

// normalizeWarnings stringifies the warnings array, or returns empty.
func normalizeWarnings(v any) []string {
	arr, ok := v.([]any)
	if !ok {
		return []string{}
	}
	warnings := make([]string, 0, len(arr))
	for _, el := range arr {
		if s, ok := el.(string); ok {
			warnings = append(warnings, s)
		} else {
			warnings = append(warnings, fmt.Sprintf("%v", el))
		}
	}
	return warnings
}
