package memory

import "github.com/m-mizutani/rrs/pkg/domain/interfaces"

// New creates a new in-memory report repository. Nothing survives the process.
func New() interfaces.ReportRepository {
	return &reportRepository{}
}
