// Package defaults holds the built-in board directory and example records.
package defaults

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/ranch-records/internal/domain"
)

//go:embed defaults.yaml
var rawDefaults []byte

type boardMemberDoc struct {
	Name     string `yaml:"name"`
	Position string `yaml:"position"`
	Email    string `yaml:"email"`
	Phone    string `yaml:"phone"`
}

type exampleRecordDoc struct {
	Title       string `yaml:"title"`
	Type        string `yaml:"type"`
	Description string `yaml:"description"`
	FileName    string `yaml:"file_name"`
	Visibility  string `yaml:"visibility"`
}

type document struct {
	BoardMembers   []boardMemberDoc `yaml:"board_members"`
	ExampleRecords struct {
		BaseURL string             `yaml:"base_url"`
		Items   []exampleRecordDoc `yaml:"items"`
	} `yaml:"example_records"`
}

var (
	parseOnce sync.Once
	parsed    document
	parseErr  error
)

func load() (document, error) {
	parseOnce.Do(func() {
		parseErr = parse(rawDefaults, &parsed)
	})
	return parsed, parseErr
}

func parse(raw []byte, doc *document) error {
	if err := yaml.Unmarshal(raw, doc); err != nil {
		return fmt.Errorf("defaults: decode: %w", err)
	}
	for i, item := range doc.ExampleRecords.Items {
		if !domain.RecordType(item.Type).IsValid() {
			return fmt.Errorf("defaults: example record %d: unknown type %q", i, item.Type)
		}
		if !domain.Visibility(item.Visibility).IsValid() {
			return fmt.Errorf("defaults: example record %d: unknown visibility %q", i, item.Visibility)
		}
	}
	return nil
}

// BoardMembers returns the initial board directory with ids 1..n.
func BoardMembers() ([]domain.BoardMember, error) {
	doc, err := load()
	if err != nil {
		return nil, err
	}

	members := make([]domain.BoardMember, 0, len(doc.BoardMembers))
	for i, m := range doc.BoardMembers {
		members = append(members, domain.BoardMember{
			ID:       int64(i + 1),
			Name:     m.Name,
			Position: m.Position,
			Email:    m.Email,
			Phone:    m.Phone,
		})
	}
	return members, nil
}

// ExampleRecords returns the placeholder library shown when nothing else is
// known. IDs and upload dates are left for the store to assign.
func ExampleRecords() ([]domain.Record, error) {
	doc, err := load()
	if err != nil {
		return nil, err
	}

	records := make([]domain.Record, 0, len(doc.ExampleRecords.Items))
	for _, item := range doc.ExampleRecords.Items {
		records = append(records, domain.Record{
			Title:       item.Title,
			Type:        domain.RecordType(item.Type),
			Description: item.Description,
			FileName:    item.FileName,
			FileContent: doc.ExampleRecords.BaseURL + item.FileName,
			Visibility:  domain.Visibility(item.Visibility),
		})
	}
	return records, nil
}
