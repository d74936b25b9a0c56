// Package v201605 contains the typed clients for version v201605 of the DFP API.
package v201605
