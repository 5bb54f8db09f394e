// Package pipeline shapes one inbound request into one outbound response for
// a reference-data or transactional resource.
//
// Every endpoint follows the same sequence: validate the input, read the
// cache-bypass directive, delegate once to a backing collaborator, project the
// returned entities onto DTOs, and on failure classify the fault, log it once
// and answer with a fixed status and a sanitized message. Handlers bind a
// collaborator call and a mapping function to one of List, Get, Query or
// Write instead of repeating that sequence.
//
// Collection endpoints tolerate per-item mapping failures: the item is logged
// and left out, the rest of the response is returned with HTTP 200.
package pipeline
