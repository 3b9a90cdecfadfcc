// Package llmv1 defines the wire protocol between the orchestrator and the
// LLM sidecar. The Go stubs are generated from llm.proto.
package llmv1

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative llm.proto
