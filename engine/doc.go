// Package engine ties the pieces together: it loads a cached graph or
// builds one from the dataset, and exposes the queries the command line
// offers (hub path, neighborhood, group numbers, conference subgraph,
// component, export).
package engine
