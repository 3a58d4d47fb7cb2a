package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Challenge is one solved kata together with every submitted solution.
// Solutions are ordered newest first.
type Challenge struct {
	Level     string     `json:"level" yaml:"level"`
	Title     string     `json:"title" yaml:"title"`
	Link      string     `json:"link,omitempty" yaml:"link,omitempty"`
	Solutions []Solution `json:"solutions" yaml:"solutions"`
}

type Solution struct {
	Language string `json:"language" yaml:"language"`
	Code     string `json:"code" yaml:"code"`
}

// VersionedFile is the target computed for a single solution.
type VersionedFile struct {
	Path     string
	Language string
	Version  int
}

// UserProfile mirrors the public user endpoint of the Codewars API.
type UserProfile struct {
	Username            string         `json:"username"`
	Name                string         `json:"name"`
	Honor               int            `json:"honor"`
	Clan                string         `json:"clan"`
	LeaderboardPosition int            `json:"leaderboardPosition"`
	Ranks               Ranks          `json:"ranks"`
	CodeChallenges      CodeChallenges `json:"codeChallenges"`
}

type Ranks struct {
	Overall   Rank          `json:"overall"`
	Languages LanguageRanks `json:"languages"`
}

type Rank struct {
	Rank  int    `json:"rank"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Score int    `json:"score"`
}

// LanguageRank is a Rank tagged with the language it belongs to.
type LanguageRank struct {
	Language string
	Rank
}

// LanguageRanks keeps per-language ranks in the order the API sent them.
type LanguageRanks []LanguageRank

// UnmarshalJSON decodes the API's language-keyed object without losing key order.
func (lr *LanguageRanks) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*lr = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("language ranks: expected object, got %v", tok)
	}

	ranks := LanguageRanks{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		language, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("language ranks: unexpected key %v", keyTok)
		}

		var rank Rank
		if err := dec.Decode(&rank); err != nil {
			return fmt.Errorf("language ranks: %s: %w", language, err)
		}
		ranks = append(ranks, LanguageRank{Language: language, Rank: rank})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*lr = ranks
	return nil
}

// MarshalJSON writes the ranks back as a language-keyed object in order.
func (lr LanguageRanks) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, r := range lr {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(r.Language)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(r.Rank)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

type CodeChallenges struct {
	TotalAuthored  int `json:"totalAuthored"`
	TotalCompleted int `json:"totalCompleted"`
}
