package model

import (
	"encoding/json"
	"strings"
)

// type names as found in the "$type" discriminator, e.g. "Game.DriverStats, Assembly-CSharp"
const (
	tagDriverStats = "DriverStats"
	tagDeadDriver  = "DeadDriver"
)

type Person struct {
	Name   Text      `json:"Name"`
	States StateList `json:"States"`
}

// State is one of DriverStats, DeceasedStatus or UnknownState
type State interface {
	isState()
}

// DriverStats holds the career counters of a driver
type DriverStats struct {
	FirstPlaces      Int    `json:"FirstPlaces"`
	Podiums          Int    `json:"Podiums"`
	SeasonsWon       Int    `json:"SeasonsWon"`
	CareerPoints     Points `json:"CareerPoints"`
	GoldenLaps       Int    `json:"GoldenLaps"`
	PolePositions    Int    `json:"PolePositions"`
	RacesCompleted   Int    `json:"RacesCompleted"`
	SeasonsCompleted Int    `json:"SeasonsCompleted"`
}

// DeceasedStatus marks a person as deceased
type DeceasedStatus struct{}

// UnknownState keeps the discriminator of records this package does not interpret
type UnknownState struct {
	Tag string
}

func (DriverStats) isState()    {}
func (DeceasedStatus) isState() {}
func (UnknownState) isState()   {}

type StateList []State

func (l *StateList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		*l = nil
		return nil
	}
	ret := make(StateList, 0, len(raw))
	for i := range raw {
		if s, ok := decodeState(raw[i]); ok {
			ret = append(ret, s)
		}
	}
	*l = ret
	return nil
}

func decodeState(data json.RawMessage) (State, bool) {
	var head struct {
		Type Text `json:"$type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, false
	}
	switch typeName(string(head.Type)) {
	case tagDriverStats:
		var ds DriverStats
		if err := json.Unmarshal(data, &ds); err != nil {
			return nil, false
		}
		return ds, true
	case tagDeadDriver:
		return DeceasedStatus{}, true
	default:
		return UnknownState{Tag: string(head.Type)}, true
	}
}

// typeName extracts "DriverStats" from "Game.DriverStats, Assembly-CSharp"
func typeName(tag string) string {
	if idx := strings.Index(tag, ","); idx >= 0 {
		tag = tag[:idx]
	}
	tag = strings.TrimSpace(tag)
	if idx := strings.LastIndex(tag, "."); idx >= 0 {
		tag = tag[idx+1:]
	}
	return tag
}

// DriverStats returns the first driver statistics record
func (p *Person) DriverStats() (DriverStats, bool) {
	for _, s := range p.States {
		if ds, ok := s.(DriverStats); ok {
			return ds, true
		}
	}
	return DriverStats{}, false
}

func (p *Person) IsDriver() bool {
	_, ok := p.DriverStats()
	return ok
}

func (p *Person) IsDeceased() bool {
	for _, s := range p.States {
		if _, ok := s.(DeceasedStatus); ok {
			return true
		}
	}
	return false
}
