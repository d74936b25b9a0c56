package v201605

import "github.com/custodia-labs/adsclient/internal/statement"

// Version is the protocol version these clients speak.
const Version = "v201605"

// Namespace is the target namespace of every v201605 service binding.
const Namespace = "https://www.google.com/apis/ads/publisher/v201605"

// Statement is the PQL filter accepted by the *ByStatement operations.
type Statement = statement.Statement

// Money is an amount in micros of a currency.
type Money struct {
	CurrencyCode string `xml:"currencyCode"`
	MicroAmount  int64  `xml:"microAmount"`
}

// LineItem is a DFP line item.
type LineItem struct {
	ID                int64  `xml:"id"`
	OrderID           int64  `xml:"orderId"`
	Name              string `xml:"name"`
	ExternalID        string `xml:"externalId"`
	Status            string `xml:"status"`
	LineItemType      string `xml:"lineItemType"`
	CostType          string `xml:"costType"`
	CostPerUnit       Money  `xml:"costPerUnit"`
	IsArchived        bool   `xml:"isArchived"`
	ReservationStatus string `xml:"reservationStatus"`
}

// LineItemPage is one page of line items.
type LineItemPage struct {
	TotalResultSetSize int        `xml:"totalResultSetSize"`
	StartIndex         int        `xml:"startIndex"`
	Results            []LineItem `xml:"results"`
}
