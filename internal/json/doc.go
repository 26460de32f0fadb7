// Package json encodes and decodes the module's JSON documents.
//
// On platforms supported by [sonic] it uses sonic's standard-library
// compatible configuration; elsewhere it falls back to encoding/json.
package json
