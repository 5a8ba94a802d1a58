// pkg/registry/schema.go
package registry

// ActivityRegistry describes the job types the advisor workers serve.
type ActivityRegistry struct {
	Version     string     `json:"version"`
	LastUpdated string     `json:"lastUpdated"`
	Activities  []Activity `json:"activities"`
}

type Activity struct {
	ID          string   `json:"id"`
	DisplayName string   `json:"displayName"`
	Description string   `json:"description"`
	TaskType    string   `json:"taskType"`
	Status      string   `json:"implementationStatus"`
	InputVars   []string `json:"inputVariables"`
	OutputVars  []string `json:"outputVariables"`
	ErrorCodes  []string `json:"errorCodes"`
	Timeout     string   `json:"timeout"`
	Retries     int      `json:"retries"`
}
