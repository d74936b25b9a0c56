package soap

import (
	"encoding/xml"
	"errors"
	"fmt"

	"github.com/custodia-labs/adsclient/internal/core/domain"
)

// Namespaces used in envelopes and header blocks.
const (
	EnvelopeNamespace = "http://schemas.xmlsoap.org/soap/envelope/"
	SecurityNamespace = "http://docs.oasis-open.org/wss/2004/01/oasis-200401-wss-wssecurity-secext-1.0.xsd"
)

// ErrEmptyResponse indicates the response body held no element to decode.
var ErrEmptyResponse = errors.New("soap: empty response body")

type envelope struct {
	XMLName xml.Name        `xml:"http://schemas.xmlsoap.org/soap/envelope/ Envelope"`
	Header  *envelopeHeader `xml:"http://schemas.xmlsoap.org/soap/envelope/ Header,omitempty"`
	Body    envelopeBody    `xml:"http://schemas.xmlsoap.org/soap/envelope/ Body"`
}

type envelopeHeader struct {
	Blocks []any
}

type envelopeBody struct {
	Content any
}

// securityHeader is the WS-Security block carrying the user token.
type securityHeader struct {
	XMLName       xml.Name      `xml:"http://docs.oasis-open.org/wss/2004/01/oasis-200401-wss-wssecurity-secext-1.0.xsd Security"`
	UsernameToken usernameToken `xml:"UsernameToken"`
}

type usernameToken struct {
	Username string `xml:"Username"`
	Password string `xml:"Password"`
}

func newSecurityHeader(token domain.UserToken) *securityHeader {
	return &securityHeader{
		UsernameToken: usernameToken{Username: token.UserName, Password: token.Token},
	}
}

// requestHeader is written in the header's TargetNamespace, so its members
// inherit that namespace as well.
type requestHeader struct {
	XMLName         xml.Name
	ApplicationName string `xml:"applicationName,omitempty"`
	NetworkCode     string `xml:"networkCode,omitempty"`
}

func newRequestHeader(h *domain.RequestHeader) *requestHeader {
	return &requestHeader{
		XMLName:         xml.Name{Space: h.TargetNamespace, Local: "RequestHeader"},
		ApplicationName: h.ApplicationName,
		NetworkCode:     h.NetworkCode,
	}
}

// encodeEnvelope wraps request and the optional header blocks into an envelope.
func encodeEnvelope(blocks []any, request any) ([]byte, error) {
	env := envelope{Body: envelopeBody{Content: request}}
	if len(blocks) > 0 {
		env.Header = &envelopeHeader{Blocks: blocks}
	}

	data, err := xml.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("encode envelope: %w", err)
	}
	return append([]byte(xml.Header), data...), nil
}

type responseEnvelope struct {
	XMLName xml.Name     `xml:"Envelope"`
	Body    responseBody `xml:"Body"`
}

// responseBody decodes either a fault or the first element of the body into Content.
type responseBody struct {
	Fault   *Fault
	Content any
	decoded bool
}

func (b *responseBody) UnmarshalXML(d *xml.Decoder, _ xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}

		switch se := tok.(type) {
		case xml.StartElement:
			switch {
			case se.Name.Local == "Fault":
				b.Fault = &Fault{}
				if err := d.DecodeElement(b.Fault, &se); err != nil {
					return err
				}
			case b.Content != nil && !b.decoded:
				if err := d.DecodeElement(b.Content, &se); err != nil {
					return err
				}
				b.decoded = true
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			return nil
		}
	}
}
