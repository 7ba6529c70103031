package output

import (
	"encoding/json"
	"io"
	"sort"
	"strconv"

	"github.com/beevik/etree"
)

// xmlItem names the elements of a list
const xmlItem = "item"

// encodeXML writes v as an XML document with root as the document element.
// v goes through its JSON form so field names match the other formats.
func encodeXML(w io.Writer, root string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var generic interface{}
	if err := json.Unmarshal(data, &generic); err != nil {
		return err
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	fillElement(doc.CreateElement(root), generic)
	doc.Indent(2)

	_, err = doc.WriteTo(w)
	return err
}

func fillElement(el *etree.Element, v interface{}) {
	switch val := v.(type) {
	case map[string]interface{}:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fillElement(el.CreateElement(k), val[k])
		}
	case []interface{}:
		for _, item := range val {
			fillElement(el.CreateElement(xmlItem), item)
		}
	case string:
		el.SetText(val)
	case bool:
		el.SetText(strconv.FormatBool(val))
	case float64:
		el.SetText(strconv.FormatFloat(val, 'f', -1, 64))
	}
}
