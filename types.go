package zeroentropy

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// ContentType discriminates the variants of a document Content value.
type ContentType string

const (
	// ContentTypeText is raw UTF-8 text, indexed as-is.
	ContentTypeText ContentType = "text"
	// ContentTypeAuto is base64-encoded binary data whose format the
	// server detects and parses (PDF, DOCX, images with OCR).
	ContentTypeAuto ContentType = "auto"
)

// Content is a document body submitted for ingestion. Construct values
// with TextContent, AutoContent or AutoContentBytes; the zero value is
// invalid and fails to marshal.
type Content struct {
	typ        ContentType
	text       string
	base64Data string
}

// TextContent returns raw text content.
func TextContent(text string) Content {
	return Content{typ: ContentTypeText, text: text}
}

// AutoContent returns binary content from already base64-encoded data.
// The server detects the file format.
func AutoContent(base64Data string) Content {
	return Content{typ: ContentTypeAuto, base64Data: base64Data}
}

// AutoContentBytes returns binary content from raw bytes, encoding them
// as base64 for transport.
func AutoContentBytes(data []byte) Content {
	return AutoContent(base64.StdEncoding.EncodeToString(data))
}

// Type returns which variant the content holds.
func (c Content) Type() ContentType {
	return c.typ
}

// Text returns the text for a ContentTypeText value, or "".
func (c Content) Text() string {
	return c.text
}

// Base64Data returns the encoded payload for a ContentTypeAuto value, or "".
func (c Content) Base64Data() string {
	return c.base64Data
}

// MarshalJSON implements json.Marshaler using the API's tagged union
// encoding.
func (c Content) MarshalJSON() ([]byte, error) {
	switch c.typ {
	case ContentTypeText:
		return json.Marshal(struct {
			Type ContentType `json:"type"`
			Text string      `json:"text"`
		}{ContentTypeText, c.text})
	case ContentTypeAuto:
		return json.Marshal(struct {
			Type       ContentType `json:"type"`
			Base64Data string      `json:"base64_data"`
		}{ContentTypeAuto, c.base64Data})
	}
	return nil, fmt.Errorf("content has no variant; use TextContent or AutoContent")
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Content) UnmarshalJSON(data []byte) error {
	var wire struct {
		Type       ContentType `json:"type"`
		Text       string      `json:"text"`
		Base64Data string      `json:"base64_data"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	switch wire.Type {
	case ContentTypeText:
		*c = TextContent(wire.Text)
	case ContentTypeAuto:
		*c = AutoContent(wire.Base64Data)
	default:
		return fmt.Errorf("unknown content type %q", wire.Type)
	}
	return nil
}

// Metadata is the user-supplied metadata attached to a document. Values
// are strings or lists of strings; list values can be matched
// individually by query filters.
type Metadata map[string]MetadataValue

// MetadataValue is a single metadata field value. Construct values with
// String or StringList.
type MetadataValue struct {
	single string
	list   []string
	isList bool
}

// String returns a single-string metadata value.
func String(value string) MetadataValue {
	return MetadataValue{single: value}
}

// StringList returns a list-of-strings metadata value.
func StringList(values ...string) MetadataValue {
	return MetadataValue{list: values, isList: true}
}

// IsList reports whether the value is a list of strings.
func (v MetadataValue) IsList() bool {
	return v.isList
}

// Value returns the string for a single-valued field, or "".
func (v MetadataValue) Value() string {
	return v.single
}

// Values returns the strings for a list-valued field, or nil.
func (v MetadataValue) Values() []string {
	return v.list
}

// MarshalJSON implements json.Marshaler. Single values encode as a JSON
// string, list values as an array of strings.
func (v MetadataValue) MarshalJSON() ([]byte, error) {
	if v.isList {
		if v.list == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.list)
	}
	return json.Marshal(v.single)
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *MetadataValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = String(s)
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*v = StringList(list...)
		return nil
	}
	return fmt.Errorf("metadata value must be a string or a list of strings")
}

// Filter is a metadata filter applied to query results. It follows the
// API's filter syntax: field names map to operator objects, for example
//
//	Filter{"category": map[string]interface{}{"$eq": "news"}}
//
// and may be combined with $and and $or clauses.
type Filter map[string]interface{}

// LatencyMode trades query latency against result quality.
type LatencyMode string

const (
	// LatencyModeLow prioritizes response time.
	LatencyModeLow LatencyMode = "low"
	// LatencyModeHigh prioritizes retrieval quality for top-documents
	// queries.
	LatencyModeHigh LatencyMode = "high"
)

// IndexStatus is the server-side indexing state of a document.
type IndexStatus string

const (
	IndexStatusNotParsed      IndexStatus = "not_parsed"
	IndexStatusParsing        IndexStatus = "parsing"
	IndexStatusNotIndexed     IndexStatus = "not_indexed"
	IndexStatusIndexing       IndexStatus = "indexing"
	IndexStatusIndexed        IndexStatus = "indexed"
	IndexStatusParsingFailed  IndexStatus = "parsing_failed"
	IndexStatusIndexingFailed IndexStatus = "indexing_failed"
)

// Terminal reports whether the status is final, so further polling
// cannot change it.
func (s IndexStatus) Terminal() bool {
	switch s {
	case IndexStatusIndexed, IndexStatusParsingFailed, IndexStatusIndexingFailed:
		return true
	}
	return false
}

// Failed reports whether the document failed to parse or index.
func (s IndexStatus) Failed() bool {
	return s == IndexStatusParsingFailed || s == IndexStatusIndexingFailed
}

// DocumentInfo describes a stored document. Content is set only when it
// was requested and the document has been parsed.
type DocumentInfo struct {
	Path        string      `json:"path"`
	IndexStatus IndexStatus `json:"index_status"`
	Metadata    Metadata    `json:"metadata,omitempty"`
	Content     *Content    `json:"content,omitempty"`
}

// PageInfo describes one page of a parsed document. Content is set only
// when it was requested.
type PageInfo struct {
	Path       string  `json:"path"`
	PageNumber int     `json:"page_number"`
	Content    *string `json:"content,omitempty"`
}

// DocumentResult is one result of a top-documents query.
type DocumentResult struct {
	Path     string   `json:"path"`
	Score    float64  `json:"score"`
	Metadata Metadata `json:"metadata,omitempty"`
}

// PageResult is one result of a top-pages query.
type PageResult struct {
	Path       string  `json:"path"`
	PageNumber int     `json:"page_number"`
	Score      float64 `json:"score"`
	Content    *string `json:"content,omitempty"`
}

// SnippetResult is one result of a top-snippets query. PageNumber is nil
// for documents without page structure.
type SnippetResult struct {
	Path       string   `json:"path"`
	Content    string   `json:"content"`
	Score      float64  `json:"score"`
	PageNumber *int     `json:"page_number,omitempty"`
	Metadata   Metadata `json:"metadata,omitempty"`
}

// RerankDocument is one candidate passed to Rerank. ID is echoed back in
// the results so callers can correlate.
type RerankDocument struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// RerankResult is one rerank result. Index is the position of the
// document in the request; results are ordered by descending Score.
type RerankResult struct {
	ID    string  `json:"id"`
	Score float64 `json:"score"`
	Index int     `json:"index"`
}

// Status reports account-wide totals.
type Status struct {
	NumDocuments   int64 `json:"num_documents"`
	NumCollections int64 `json:"num_collections"`
}
