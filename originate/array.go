package originate

import "strings"

const arrayPrefix = "ARRAY::"

// EslArray is the round-trippable parser for FreeSWITCH's
// "ARRAY::a|:b|:c" channel-variable encoding of a list value.
type EslArray struct {
	Items []string
}

// String renders "ARRAY::" followed by the items joined with "|:".
func (a EslArray) String() string {
	return arrayPrefix + strings.Join(a.Items, "|:")
}

// ParseEslArray parses an "ARRAY::..." value as produced by String.
func ParseEslArray(s string) (EslArray, error) {
	if !strings.HasPrefix(s, arrayPrefix) {
		return EslArray{}, errMalformed("not an ESL array value: %q", s)
	}
	rest := s[len(arrayPrefix):]
	if rest == "" {
		return EslArray{}, nil
	}
	return EslArray{Items: strings.Split(rest, "|:")}, nil
}

// MultipartPart is one "<mime-type>:<body>" segment of a MultipartBody.
type MultipartPart struct {
	MimeType string
	Body     string
}

// MultipartBody is the round-trippable parser for FreeSWITCH's
// "ARRAY::<mime>:<body>|:..." multipart message body encoding.
type MultipartBody struct {
	Parts []MultipartPart
}

// String renders the multipart body back to its ARRAY:: wire form.
func (m MultipartBody) String() string {
	items := make([]string, len(m.Parts))
	for i, p := range m.Parts {
		items[i] = p.MimeType + ":" + p.Body
	}
	return EslArray{Items: items}.String()
}

// ParseMultipartBody parses an "ARRAY::<mime>:<body>|:..." value.
func ParseMultipartBody(s string) (MultipartBody, error) {
	arr, err := ParseEslArray(s)
	if err != nil {
		return MultipartBody{}, err
	}
	parts := make([]MultipartPart, 0, len(arr.Items))
	for _, item := range arr.Items {
		idx := strings.Index(item, ":")
		if idx < 0 {
			return MultipartBody{}, errMalformed("malformed multipart segment: %q", item)
		}
		parts = append(parts, MultipartPart{MimeType: item[:idx], Body: item[idx+1:]})
	}
	return MultipartBody{Parts: parts}, nil
}

// ByMimeType returns the first part's body matching mimeType, and
// whether one was found.
func (m MultipartBody) ByMimeType(mimeType string) (string, bool) {
	for _, p := range m.Parts {
		if p.MimeType == mimeType {
			return p.Body, true
		}
	}
	return "", false
}
