// Package crypto defines the domain model for AES encryption requests: the key and IV material,
// the block-cipher modes and their requirements, the validated cipher request handed to an AES primitive,
// and the closed set of errors a request can fail with.
package crypto
