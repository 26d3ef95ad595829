package mcptool

import (
	"fmt"

	"github.com/ytakei/taskwarden/internal/domain"
	"github.com/ytakei/taskwarden/internal/usecase"
)

// argString returns a required string argument.
func argString(args map[string]any, key string) (string, error) {
	v, ok := args[key]
	if !ok {
		return "", fmt.Errorf("missing required argument %q: %w", key, domain.ErrValidation)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("argument %q must be a string: %w", key, domain.ErrValidation)
	}
	return s, nil
}

// argOptString returns an optional string argument, nil when absent.
func argOptString(args map[string]any, key string) (*string, error) {
	v, ok := args[key]
	if !ok {
		return nil, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("argument %q must be a string: %w", key, domain.ErrValidation)
	}
	return &s, nil
}

// argTaskSpecs decodes an array of {title, description} objects.
func argTaskSpecs(args map[string]any, key string) ([]usecase.TaskSpec, error) {
	items, err := argObjectList(args, key)
	if err != nil {
		return nil, err
	}

	specs := make([]usecase.TaskSpec, 0, len(items))
	for i, item := range items {
		spec := usecase.TaskSpec{}
		if t, ok := item["title"].(string); ok {
			spec.Title = t
		}
		if d, ok := item["description"].(string); ok {
			spec.Description = d
		}
		if spec.Title == "" {
			return nil, fmt.Errorf("%s[%d]: title is required: %w", key, i, domain.ErrValidation)
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

// argSubtaskSpecs decodes an array of {content, id} objects. The id is
// optional; when present the caller-supplied value is used verbatim.
func argSubtaskSpecs(args map[string]any, key string) ([]domain.SubtaskSpec, error) {
	items, err := argObjectList(args, key)
	if err != nil {
		return nil, err
	}

	specs := make([]domain.SubtaskSpec, 0, len(items))
	for _, item := range items {
		spec := domain.SubtaskSpec{}
		if c, ok := item["content"].(string); ok {
			spec.Content = c
		}
		if id, ok := item["id"].(string); ok {
			spec.ID = id
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

// argObjectList returns a required array-of-objects argument.
func argObjectList(args map[string]any, key string) ([]map[string]any, error) {
	v, ok := args[key]
	if !ok {
		return nil, fmt.Errorf("missing required argument %q: %w", key, domain.ErrValidation)
	}
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("argument %q must be an array: %w", key, domain.ErrValidation)
	}

	items := make([]map[string]any, 0, len(list))
	for i, entry := range list {
		m, ok := entry.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%s[%d] must be an object: %w", key, i, domain.ErrValidation)
		}
		items = append(items, m)
	}
	return items, nil
}
