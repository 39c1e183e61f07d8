package model

import (
	"fmt"
	"strings"
)

// Jurisdiction identifies a taxing authority: the federal government or one of
// the 50 states plus DC.
type Jurisdiction uint8

const (
	NoJurisdiction Jurisdiction = iota
	Federal
	AL
	AK
	AZ
	AR
	CA
	CO
	CT
	DE
	DC
	FL
	GA
	HI
	ID
	IL
	IN
	IA
	KS
	KY
	LA
	ME
	MD
	MA
	MI
	MN
	MS
	MO
	MT
	NE
	NV
	NH
	NJ
	NM
	NY
	NC
	ND
	OH
	OK
	OR
	PA
	RI
	SC
	SD
	TN
	TX
	UT
	VT
	VA
	WA
	WV
	WI
	WY
)

var jurisdictionInfo = map[Jurisdiction]struct {
	Code string
	Name string
}{
	Federal: {"US", "Federal"},
	AL:      {"AL", "Alabama"},
	AK:      {"AK", "Alaska"},
	AZ:      {"AZ", "Arizona"},
	AR:      {"AR", "Arkansas"},
	CA:      {"CA", "California"},
	CO:      {"CO", "Colorado"},
	CT:      {"CT", "Connecticut"},
	DE:      {"DE", "Delaware"},
	DC:      {"DC", "District of Columbia"},
	FL:      {"FL", "Florida"},
	GA:      {"GA", "Georgia"},
	HI:      {"HI", "Hawaii"},
	ID:      {"ID", "Idaho"},
	IL:      {"IL", "Illinois"},
	IN:      {"IN", "Indiana"},
	IA:      {"IA", "Iowa"},
	KS:      {"KS", "Kansas"},
	KY:      {"KY", "Kentucky"},
	LA:      {"LA", "Louisiana"},
	ME:      {"ME", "Maine"},
	MD:      {"MD", "Maryland"},
	MA:      {"MA", "Massachusetts"},
	MI:      {"MI", "Michigan"},
	MN:      {"MN", "Minnesota"},
	MS:      {"MS", "Mississippi"},
	MO:      {"MO", "Missouri"},
	MT:      {"MT", "Montana"},
	NE:      {"NE", "Nebraska"},
	NV:      {"NV", "Nevada"},
	NH:      {"NH", "New Hampshire"},
	NJ:      {"NJ", "New Jersey"},
	NM:      {"NM", "New Mexico"},
	NY:      {"NY", "New York"},
	NC:      {"NC", "North Carolina"},
	ND:      {"ND", "North Dakota"},
	OH:      {"OH", "Ohio"},
	OK:      {"OK", "Oklahoma"},
	OR:      {"OR", "Oregon"},
	PA:      {"PA", "Pennsylvania"},
	RI:      {"RI", "Rhode Island"},
	SC:      {"SC", "South Carolina"},
	SD:      {"SD", "South Dakota"},
	TN:      {"TN", "Tennessee"},
	TX:      {"TX", "Texas"},
	UT:      {"UT", "Utah"},
	VT:      {"VT", "Vermont"},
	VA:      {"VA", "Virginia"},
	WA:      {"WA", "Washington"},
	WV:      {"WV", "West Virginia"},
	WI:      {"WI", "Wisconsin"},
	WY:      {"WY", "Wyoming"},
}

// States lists the 51 state-level jurisdictions (50 states plus DC) in code order.
func States() []Jurisdiction {
	states := make([]Jurisdiction, 0, 51)
	for j := AL; j <= WY; j++ {
		states = append(states, j)
	}
	return states
}

// ParseJurisdiction maps a two-letter state code (or "US" for federal) to a
// Jurisdiction. Matching is case-insensitive.
func ParseJurisdiction(code string) (Jurisdiction, error) {
	c := strings.ToUpper(strings.TrimSpace(code))
	for j, info := range jurisdictionInfo {
		if info.Code == c {
			return j, nil
		}
	}
	return NoJurisdiction, fmt.Errorf("%w: %q", ErrUnknownJurisdiction, code)
}

// ParseState is ParseJurisdiction restricted to state-level codes.
func ParseState(code string) (Jurisdiction, error) {
	j, err := ParseJurisdiction(code)
	if err != nil {
		return NoJurisdiction, err
	}
	if !j.IsState() {
		return NoJurisdiction, fmt.Errorf("%w: %q is not a state", ErrUnknownJurisdiction, code)
	}
	return j, nil
}

// IsState reports whether j is one of the 50 states or DC.
func (j Jurisdiction) IsState() bool {
	return j >= AL && j <= WY
}

// Code returns the two-letter code, or "" for NoJurisdiction.
func (j Jurisdiction) Code() string {
	return jurisdictionInfo[j].Code
}

// Name returns the full name, e.g. "New Jersey".
func (j Jurisdiction) Name() string {
	return jurisdictionInfo[j].Name
}

func (j Jurisdiction) String() string {
	if c := j.Code(); c != "" {
		return c
	}
	return "NONE"
}

// MarshalText encodes the jurisdiction as its two-letter code.
func (j Jurisdiction) MarshalText() ([]byte, error) {
	return []byte(j.Code()), nil
}

// UnmarshalText decodes a two-letter code; an empty value is NoJurisdiction.
func (j *Jurisdiction) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*j = NoJurisdiction
		return nil
	}
	parsed, err := ParseJurisdiction(string(text))
	if err != nil {
		return err
	}
	*j = parsed
	return nil
}
