/*
Package orm provides an easy to use db wrapper

Break state space into prefixed sections called Buckets.
Each bucket contains only one type of model, keyed by a
primary index. Sequences provide unique, monotone key
allocation within a bucket.
*/
package orm
