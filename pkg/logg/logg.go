package logg

// Shared zap field names so log output stays greppable across layers.
const (
	Layer     = "layer"
	Operation = "operation"
	URL       = "url"
	Selector  = "selector"
	Strategy  = "strategy"
	RunID     = "run_id"
	Path      = "path"
	Count     = "count"
)
