package job

import (
	_ "embed"
	"fmt"

	"go.yaml.in/yaml/v4"
)

//go:embed seed/jobs.yaml
var seedYAML []byte

// SeedJobs returns the canonical example postings in their fixed order.
func SeedJobs() ([]Job, error) {
	var jobs []Job
	if err := yaml.Unmarshal(seedYAML, &jobs); err != nil {
		return nil, fmt.Errorf("decode seed jobs: %w", err)
	}
	for _, j := range jobs {
		if !j.Type.Valid() {
			return nil, fmt.Errorf("seed job %s: unknown type %q", j.ID, j.Type)
		}
	}
	return jobs, nil
}
