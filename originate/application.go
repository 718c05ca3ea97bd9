package originate

import "strings"

// Application is a single dialplan application to run on answer,
// either inline form ("name:args") or XML form ("&name(args)").
type Application struct {
	Name    string
	Args    string
	XMLForm bool
}

// String renders the application. A Name with no Args omits the ":".
func (a Application) String() string {
	if a.XMLForm {
		return "&" + a.Name + "(" + a.Args + ")"
	}
	if a.Args == "" {
		return a.Name
	}
	return a.Name + ":" + a.Args
}

// ParseApplication parses one application token as produced by String.
func ParseApplication(s string) (Application, error) {
	if strings.HasPrefix(s, "&") {
		open := strings.Index(s, "(")
		if open < 0 || !strings.HasSuffix(s, ")") {
			return Application{}, errMalformed("malformed XML-form application: %q", s)
		}
		return Application{Name: s[1:open], Args: s[open+1 : len(s)-1], XMLForm: true}, nil
	}
	if idx := strings.Index(s, ":"); idx >= 0 {
		return Application{Name: s[:idx], Args: s[idx+1:]}, nil
	}
	return Application{Name: s}, nil
}

// ApplicationList is a comma-joined chain of Applications.
type ApplicationList []Application

// String joins every application with ",".
func (l ApplicationList) String() string {
	parts := make([]string, len(l))
	for i, a := range l {
		parts[i] = a.String()
	}
	return strings.Join(parts, ",")
}

// ParseApplicationList parses a comma-joined application chain. Unlike
// channel-variable values, application args carry no quoting
// convention in the protocol, so splitting is a plain comma split — a
// literal "," inside an application's args is not representable.
func ParseApplicationList(s string) (ApplicationList, error) {
	if s == "" {
		return nil, nil
	}
	var list ApplicationList
	for _, tok := range strings.Split(s, ",") {
		if tok == "" {
			continue
		}
		app, err := ParseApplication(tok)
		if err != nil {
			return nil, err
		}
		list = append(list, app)
	}
	return list, nil
}
