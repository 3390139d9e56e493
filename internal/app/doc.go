// Package app wires a loaded scenario to the search engine: it builds one
// board per requested algorithm, runs them (concurrently unless frames are
// being rendered), and prints a summary per run in a fixed order.
package app
