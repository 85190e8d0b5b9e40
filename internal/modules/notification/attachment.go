package notification

import (
	"encoding/base64"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"

	"eventbooking/internal/pkg/mailer"
)

var attachmentColumns = []string{
	"bookingId",
	"eventTitle",
	"eventFrom",
	"eventTo",
	"eventWhere",
	"name",
	"email",
	"level",
}

// attachmentCSV renders the header and one row of raw booking values.
// Values are not quoted.
func attachmentCSV(booking map[string]any) string {
	row := lo.Map(attachmentColumns, func(col string, _ int) string {
		return formatValue(booking[col])
	})
	return strings.Join(attachmentColumns, ",") + "\n" + strings.Join(row, ",")
}

func bookingAttachment(booking map[string]any, now time.Time) mailer.Attachment {
	id := formatValue(booking["bookingId"])
	if id == "" || id == "0" || id == "false" {
		id = strconv.FormatInt(now.UnixMilli(), 10)
	}

	return mailer.Attachment{
		Content:     base64.StdEncoding.EncodeToString([]byte(attachmentCSV(booking))),
		Filename:    "booking_" + id + ".csv",
		Type:        "text/csv",
		Disposition: "attachment",
	}
}

func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	case json.Number:
		return x.String()
	default:
		b, err := json.Marshal(x)
		if err != nil {
			return ""
		}
		return string(b)
	}
}
