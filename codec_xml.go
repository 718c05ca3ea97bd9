package fsesl

import "encoding/xml"

// xmlEvent mirrors the wire shape of a text/event-xml payload:
//
//	<event>
//	  <header name="Event-Name" value="HEARTBEAT"/>
//	  ...
//	  <body>...</body>
//	</event>
type xmlEvent struct {
	XMLName xml.Name      `xml:"event"`
	Headers []xmlHeader   `xml:"header"`
	Body    *string       `xml:"body"`
}

type xmlHeader struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

// parseEventXML parses the text/event-xml payload (spec §4.1).
func parseEventXML(payload []byte) (*Event, error) {
	var x xmlEvent
	if err := xml.Unmarshal(payload, &x); err != nil {
		return nil, errProtocol("invalid event-xml payload: %v", err)
	}
	e := &Event{}
	for _, h := range x.Headers {
		e.headers = append(e.headers, Header{Name: h.Name, Value: h.Value})
	}
	if x.Body != nil {
		e.body = []byte(*x.Body)
	}
	return e, nil
}

// ToXML serializes the event to its text/event-xml payload form.
func (e *Event) ToXML() ([]byte, error) {
	x := xmlEvent{XMLName: xml.Name{Local: "event"}}
	for _, h := range e.headers {
		x.Headers = append(x.Headers, xmlHeader{Name: h.Name, Value: h.Value})
	}
	if len(e.body) > 0 {
		body := string(e.body)
		x.Body = &body
	}
	return xml.Marshal(&x)
}
