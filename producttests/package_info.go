// Package producttests contains the product API contract tests and their supporting API.
//
// Infrastructure that is not specific to products, such as the test context and the request
// builder, is in the lower-level framework package.
package producttests
