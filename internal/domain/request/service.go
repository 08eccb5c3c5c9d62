package request

import "context"

// RecordService defines the request submission and approval workflow.
type RecordService interface {
	// Submit files a new pending request for the authenticated employee
	Submit(ctx context.Context, req SubmitRequest) (RecordResponse, error)

	// ListMine retrieves the authenticated employee's requests
	ListMine(ctx context.Context) ([]RecordResponse, error)

	// List retrieves requests with filters (manager view)
	List(ctx context.Context, filter ListFilter) (ListRecordsResponse, error)

	// Approve approves a pending request
	Approve(ctx context.Context, id string) (RecordResponse, error)

	// Reject rejects a pending request with a reason
	Reject(ctx context.Context, req RejectRequest) (RecordResponse, error)
}
