// Package productservice is a reference implementation of the product API that the contract
// tests check: an in-memory Store of product records and the HTTP handler in front of it.
//
// Write requests carry their payload in the legacy form encoding used by the contract tests, a
// single json_data field whose value is raw JSON; plain JSON bodies are accepted too.
package productservice
