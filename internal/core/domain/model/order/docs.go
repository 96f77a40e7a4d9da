// Package order holds the Order aggregate: an order id with the origin and
// shipping addresses a label is created for, and its labeling Status.
package order
