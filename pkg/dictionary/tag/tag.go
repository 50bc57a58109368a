// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package tag implements the tag domain of the dictionary client.

Tags are classification labels (industries, keywords, deal types, ...)
identified by the composite [TagID] of an id string and a [TagType]. Some
types are hierarchical: their tags carry a materialized path and may be
returned together with their parent chain.

The package exposes the domain model, request builders, the [Repository]
port and its HTTP adapter, and the [Service] facade callers use.
*/
package tag

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/taibuivan/dictionary/pkg/apperr"
)

// # Tag Types

// TagType is the category of a tag. Its numeric code is the wire encoding.
type TagType int

const (
	Industry            TagType = 1
	Keyword             TagType = 2
	Vertical            TagType = 3
	CPC                 TagType = 4
	InvestorType        TagType = 5
	OwnershipStatus     TagType = 6
	Universe            TagType = 7
	DealClass           TagType = 8
	ServiceProviderType TagType = 9
	DealType            TagType = 10
	SIC                 TagType = 11
	FinancingStatus     TagType = 12
	InvestorStatus      TagType = 13
	ValuationStatus     TagType = 14
	OtherStated         TagType = 15
	InvestmentType      TagType = 16
	RealAssetType       TagType = 17
)

// IDKind is the syntactic form a tag id must have.
type IDKind int

const (
	// IDKindSlug ids are lowercase kebab-case strings.
	IDKindSlug IDKind = iota
	// IDKindUUID ids are canonical UUID strings.
	IDKindUUID
)

type typeInfo struct {
	name     string
	withPath bool
	idKind   IDKind
}

var typeInfos = map[TagType]typeInfo{
	Industry:            {name: "Industry", withPath: true},
	Keyword:             {name: "Keyword", idKind: IDKindUUID},
	Vertical:            {name: "Vertical"},
	CPC:                 {name: "CPC"},
	InvestorType:        {name: "InvestorType"},
	OwnershipStatus:     {name: "OwnershipStatus"},
	Universe:            {name: "Universe"},
	DealClass:           {name: "DealClass"},
	ServiceProviderType: {name: "ServiceProviderType"},
	DealType:            {name: "DealType", withPath: true},
	SIC:                 {name: "SIC", withPath: true},
	FinancingStatus:     {name: "FinancingStatus"},
	InvestorStatus:      {name: "InvestorStatus"},
	ValuationStatus:     {name: "ValuationStatus"},
	RealAssetType:       {name: "RealAssetType"},
	OtherStated:         {name: "OtherStated"},
	InvestmentType:      {name: "InvestmentType"},
}

// allTypes is the declaration order of the tag types.
var allTypes = []TagType{
	Industry, Keyword, Vertical, CPC, InvestorType, OwnershipStatus,
	Universe, DealClass, ServiceProviderType, DealType, SIC, FinancingStatus,
	InvestorStatus, ValuationStatus, RealAssetType, OtherStated, InvestmentType,
}

// TagTypes returns every known tag type in declaration order.
func TagTypes() []TagType {
	return append([]TagType(nil), allTypes...)
}

// String returns the canonical name, e.g. "Industry".
func (t TagType) String() string {
	if info, ok := typeInfos[t]; ok {
		return info.name
	}
	return "TagType(" + strconv.Itoa(int(t)) + ")"
}

// Code returns the numeric wire code.
func (t TagType) Code() int { return int(t) }

// Valid reports whether t is a known tag type.
func (t TagType) Valid() bool {
	_, ok := typeInfos[t]
	return ok
}

// WithPath reports whether tags of this type are hierarchical.
func (t TagType) WithPath() bool { return typeInfos[t].withPath }

// IDKind returns the id syntax expected for tags of this type.
func (t TagType) IDKind() IDKind { return typeInfos[t].idKind }

// ParseTagType resolves a canonical type name. Matching is exact.
func ParseTagType(name string) (TagType, error) {
	for _, t := range allTypes {
		if typeInfos[t].name == name {
			return t, nil
		}
	}
	return 0, apperr.MalformedIdentifier("Unknown tag type: " + name)
}

// TagTypeFromCode resolves a numeric wire code.
func TagTypeFromCode(code int) (TagType, error) {
	t := TagType(code)
	if !t.Valid() {
		return 0, apperr.MalformedIdentifier("Unknown tag type code: " + strconv.Itoa(code))
	}
	return t, nil
}

// MarshalJSON encodes the type as its numeric code.
func (t TagType) MarshalJSON() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("tag: cannot encode unknown tag type %d", int(t))
	}
	return []byte(strconv.Itoa(int(t))), nil
}

// UnmarshalJSON accepts a numeric code, a numeric string or a type name.
func (t *TagType) UnmarshalJSON(data []byte) error {
	var code int
	if err := json.Unmarshal(data, &code); err == nil {
		parsed, err := TagTypeFromCode(code)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return apperr.MalformedIdentifier("Invalid tag type: " + string(data))
	}

	if n, err := strconv.Atoi(raw); err == nil {
		parsed, err := TagTypeFromCode(n)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	}

	parsed, err := ParseTagType(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// # Identifiers

// tagIDSeparator joins the type name and the id in the string form of a [TagID].
const tagIDSeparator = ";"

// TagID is the composite identity of a tag. Two tags with the same ID and
// different types are distinct.
type TagID struct {
	ID   string
	Type TagType
}

// NewTagID is a convenience constructor.
func NewTagID(id string, tagType TagType) TagID {
	return TagID{ID: id, Type: tagType}
}

// String formats the id as "TYPE;id", e.g. "Industry;software".
func (id TagID) String() string {
	return id.Type.String() + tagIDSeparator + id.ID
}

// Format is an alias of [TagID.String].
func (id TagID) Format() string { return id.String() }

// ParseTagID parses the "TYPE;id" form produced by [TagID.String]. The id
// segment must not be blank.
func ParseTagID(s string) (TagID, error) {
	parts := strings.Split(s, tagIDSeparator)
	if len(parts) != 2 || strings.TrimSpace(parts[1]) == "" {
		return TagID{}, apperr.MalformedIdentifier("Malformed tag id: " + s)
	}

	tagType, err := ParseTagType(parts[0])
	if err != nil {
		return TagID{}, apperr.MalformedIdentifier("Malformed tag id: " + s)
	}

	return TagID{ID: parts[1], Type: tagType}, nil
}

// # Tags

// Tag is one dictionary entry.
//
// Path and Parent are only set for hierarchical types; Parent only when the
// caller asked for it. Count is set by endpoints that aggregate usage.
type Tag struct {
	ID     TagID
	Name   string
	Path   *string
	Parent *Tag
	Count  *float64
}

// HasParent reports whether the parent chain was resolved for this tag.
func (t Tag) HasParent() bool { return t.Parent != nil }

// HasType reports whether the tag has one of the given types.
func (t Tag) HasType(types ...TagType) bool {
	for _, tagType := range types {
		if t.ID.Type == tagType {
			return true
		}
	}
	return false
}

// Ancestors returns the parent chain, nearest first.
func (t Tag) Ancestors() []Tag {
	var ancestors []Tag
	for p := t.Parent; p != nil; p = p.Parent {
		ancestors = append(ancestors, *p)
	}
	return ancestors
}

// MatchTypes reports whether every tag has one of the allowed types.
// An empty tag slice matches.
func MatchTypes(tags []Tag, allowed ...TagType) bool {
	for _, t := range tags {
		if !t.HasType(allowed...) {
			return false
		}
	}
	return true
}

// tagJSON is the flat wire form of a [Tag].
type tagJSON struct {
	ID     string   `json:"id"`
	Type   TagType  `json:"type"`
	Name   string   `json:"name"`
	Path   *string  `json:"path,omitempty"`
	Parent *Tag     `json:"parent,omitempty"`
	Count  *float64 `json:"count,omitempty"`
}

// MarshalJSON encodes the tag in the service's flat form.
func (t Tag) MarshalJSON() ([]byte, error) {
	return json.Marshal(tagJSON{
		ID:     t.ID.ID,
		Type:   t.ID.Type,
		Name:   t.Name,
		Path:   t.Path,
		Parent: t.Parent,
		Count:  t.Count,
	})
}

// UnmarshalJSON decodes the service's flat form.
func (t *Tag) UnmarshalJSON(data []byte) error {
	var raw tagJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*t = Tag{
		ID:     TagID{ID: raw.ID, Type: raw.Type},
		Name:   raw.Name,
		Path:   raw.Path,
		Parent: raw.Parent,
		Count:  raw.Count,
	}
	return nil
}

// # Company Industry

// CompanyIndustry is a validated Industry sector/group/code triple.
//
// Group and Code are optional, but a Code requires a Group. Every present
// element must be an Industry tag.
type CompanyIndustry struct {
	Sector Tag  `json:"sector"`
	Group  *Tag `json:"group,omitempty"`
	Code   *Tag `json:"code,omitempty"`
}

// NewCompanyIndustry validates and builds a [CompanyIndustry].
func NewCompanyIndustry(sector Tag, group, code *Tag) (CompanyIndustry, error) {
	if code != nil && group == nil {
		return CompanyIndustry{}, apperr.ValidationFailed("Industry code must be with industry group")
	}
	if !sector.HasType(Industry) {
		return CompanyIndustry{}, apperr.ValidationFailed("Industry sector must be industry tag type")
	}
	if group != nil && !group.HasType(Industry) {
		return CompanyIndustry{}, apperr.ValidationFailed("Industry group must be industry tag type")
	}
	if code != nil && !code.HasType(Industry) {
		return CompanyIndustry{}, apperr.ValidationFailed("Industry code must be industry tag type")
	}

	return CompanyIndustry{Sector: sector, Group: group, Code: code}, nil
}

// TagWithParent returns the most specific element with its parent chain
// linked (code -> group -> sector). The receiver is not modified.
func (c CompanyIndustry) TagWithParent() Tag {
	sector := c.Sector
	if c.Group == nil {
		return sector
	}

	group := *c.Group
	group.Parent = &sector
	if c.Code == nil {
		return group
	}

	code := *c.Code
	code.Parent = &group
	return code
}

// UnmarshalJSON decodes and validates a triple.
func (c *CompanyIndustry) UnmarshalJSON(data []byte) error {
	type plain CompanyIndustry
	var raw plain
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	parsed, err := NewCompanyIndustry(raw.Sector, raw.Group, raw.Code)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
