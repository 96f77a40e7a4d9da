package labelflow_test

import "shippinglabel/internal/core/domain/model/kernel"

var (
	originA = kernel.MustNewAddress(kernel.AddressFields{
		Name: "Store", Street1: "1 Warehouse Rd", City: "Austin", Region: "TX", PostalCode: "73301", Country: "US",
	})
	originB = kernel.MustNewAddress(kernel.AddressFields{
		Name: "Store", Street1: "1 WAREHOUSE RD", City: "AUSTIN", Region: "TX", PostalCode: "73301-0001", Country: "US",
	})
	shippingA = kernel.MustNewAddress(kernel.AddressFields{
		Name: "Jane Doe", Street1: "60 29th Street", City: "San Francisco", Region: "CA", PostalCode: "94110", Country: "US",
	})
	shippingB = kernel.MustNewAddress(kernel.AddressFields{
		Name: "Jane Doe", Street1: "60 29TH ST", City: "SAN FRANCISCO", Region: "CA", PostalCode: "94110-4929", Country: "US",
	})
	shippingC = kernel.MustNewAddress(kernel.AddressFields{
		Name: "Jane Doe", Street1: "62 29th Street", City: "San Francisco", Region: "CA", PostalCode: "94110", Country: "US",
	})
)
