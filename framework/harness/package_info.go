// Package harness builds and sends the HTTP requests that the contract tests make against the
// product API, using the API's legacy convention of wrapping JSON payloads in a json_data form
// field.
package harness
