// Package importer provides bulk CSV imports for the project management
// entities. Each importable entity is declared as an explicit Descriptor in
// the Registry, so the set of import targets is visible in one place instead
// of being assembled through side-effectful registration calls.
package importer

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/projects-tool/project-management-api/internal/services"
)

// Entity identifies an importable entity type.
type Entity string

const (
	EntityProject Entity = "project"
	EntityBoard   Entity = "board"
	EntityList    Entity = "list"
	EntityTask    Entity = "task"
	EntityLabel   Entity = "label"
)

// ErrUnknownEntity is returned when an import targets an unregistered entity.
var ErrUnknownEntity = errors.New("unknown import entity")

// Descriptor declares one importable entity: the columns a file may carry and
// the function that feeds a single row through the entity's creation path.
// Rows go through the same services the HTTP API uses, so every validation
// rule applies to imported data as well.
type Descriptor struct {
	Entity    Entity
	Columns   []string
	CreateRow func(record map[string]string) error
}

// RowError reports a failed row. Row numbers are 1-based and count the
// header, matching what a user sees in a spreadsheet.
type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// Result summarizes an import run.
type Result struct {
	Entity  Entity     `json:"entity"`
	Created int        `json:"created"`
	Failed  int        `json:"failed"`
	Errors  []RowError `json:"errors,omitempty"`
}

// Registry holds the importable entity descriptors.
type Registry struct {
	order       []Entity
	descriptors map[Entity]Descriptor
}

// NewRegistry builds the registry for all five entities.
func NewRegistry(
	projects *services.ProjectService,
	boards *services.BoardService,
	lists *services.ListService,
	tasks *services.TaskService,
	labels *services.LabelService,
) *Registry {
	descriptors := []Descriptor{
		{
			Entity:  EntityProject,
			Columns: []string{"title", "description", "slug"},
			CreateRow: func(record map[string]string) error {
				_, err := projects.Create(services.CreateProjectInput{
					Title:       record["title"],
					Description: record["description"],
					Slug:        record["slug"],
				})
				return err
			},
		},
		{
			Entity:  EntityBoard,
			Columns: []string{"project_id", "title"},
			CreateRow: func(record map[string]string) error {
				projectID, err := parseUintColumn(record, "project_id")
				if err != nil {
					return err
				}
				_, err = boards.Create(services.CreateBoardInput{
					ProjectID: projectID,
					Title:     record["title"],
				})
				return err
			},
		},
		{
			Entity:  EntityList,
			Columns: []string{"board_id", "title", "position"},
			CreateRow: func(record map[string]string) error {
				boardID, err := parseUintColumn(record, "board_id")
				if err != nil {
					return err
				}
				position, err := parseIntColumn(record, "position")
				if err != nil {
					return err
				}
				_, err = lists.Create(services.CreateListInput{
					BoardID:  boardID,
					Title:    record["title"],
					Position: position,
				})
				return err
			},
		},
		{
			Entity:  EntityTask,
			Columns: []string{"list_id", "title", "description", "priority", "story_points"},
			CreateRow: func(record map[string]string) error {
				listID, err := parseUintColumn(record, "list_id")
				if err != nil {
					return err
				}
				storyPoints, err := parseIntColumn(record, "story_points")
				if err != nil {
					return err
				}
				_, err = tasks.Create(services.CreateTaskInput{
					ListID:      listID,
					Title:       record["title"],
					Description: record["description"],
					Priority:    record["priority"],
					StoryPoints: storyPoints,
				})
				return err
			},
		},
		{
			Entity:  EntityLabel,
			Columns: []string{"project_id", "title", "color"},
			CreateRow: func(record map[string]string) error {
				projectID, err := parseUintColumn(record, "project_id")
				if err != nil {
					return err
				}
				_, err = labels.Create(services.CreateLabelInput{
					ProjectID: projectID,
					Title:     record["title"],
					Color:     record["color"],
				})
				return err
			},
		},
	}

	registry := &Registry{descriptors: make(map[Entity]Descriptor, len(descriptors))}
	for _, desc := range descriptors {
		registry.order = append(registry.order, desc.Entity)
		registry.descriptors[desc.Entity] = desc
	}
	return registry
}

// Entities returns the importable entity names in registration order.
func (r *Registry) Entities() []Entity {
	return append([]Entity(nil), r.order...)
}

// Columns returns the accepted columns for an entity.
func (r *Registry) Columns(entity Entity) ([]string, error) {
	desc, ok := r.descriptors[entity]
	if !ok {
		return nil, ErrUnknownEntity
	}
	return append([]string(nil), desc.Columns...), nil
}

// Import feeds each row through the entity's creation path. Rows are
// independent: a failed row is recorded and the run continues. An unknown
// entity or an unrecognized header column aborts the whole import.
func (r *Registry) Import(entity Entity, header []string, rows [][]string) (*Result, error) {
	desc, ok := r.descriptors[entity]
	if !ok {
		return nil, ErrUnknownEntity
	}

	allowed := make(map[string]bool, len(desc.Columns))
	for _, column := range desc.Columns {
		allowed[column] = true
	}
	for _, column := range header {
		if !allowed[column] {
			return nil, fmt.Errorf("unknown column %q for %s import", column, entity)
		}
	}

	result := &Result{Entity: entity}
	for i, row := range rows {
		record := make(map[string]string, len(header))
		for j, column := range header {
			if j < len(row) {
				record[column] = row[j]
			}
		}

		if err := desc.CreateRow(record); err != nil {
			result.Failed++
			// Row 1 is the header.
			result.Errors = append(result.Errors, RowError{Row: i + 2, Message: err.Error()})
			continue
		}
		result.Created++
	}

	return result, nil
}

func parseUintColumn(record map[string]string, column string) (uint64, error) {
	value, err := strconv.ParseUint(record[column], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a valid ID", column, record[column])
	}
	return value, nil
}

func parseIntColumn(record map[string]string, column string) (int, error) {
	if record[column] == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(record[column])
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a valid integer", column, record[column])
	}
	return value, nil
}
