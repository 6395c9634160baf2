package eodhd

import (
	"fmt"
	"math"
	"net/http"

	"github.com/PaesslerAG/jsonpath"
)

/*
	{
	    "info": {
	        "isin": "LS000IUSD016",
	        "chartType": "mini",
	        "plotlines": [
	            {
	                "label": "previous 1.049",
	                "value": 1.04875,
	                "id": "previousDay"
	            }
	        ]
	    },
*/

// lstcEURUSDChart is the ls-tc.de mini chart endpoint for the EUR per USD
// instrument. The instrument id is stable.
var lstcEURUSDChart = "https://www.ls-tc.de/_rpc/json/instrument/chart/dataForInstrument?instrumentId=349938&series=intraday&type=mini"

// lstcLatestEURperUSD returns the latest intraday EUR-per-USD rate from the
// ls-tc.de chart feed. The response nests the series deep in an untyped JSON
// document, so the value is extracted with a jsonpath query instead of a
// dedicated struct.
func lstcLatestEURperUSD(client *http.Client) (float64, error) {
	var jobj any
	if err := jwget(client, lstcEURUSDChart, &jobj); err != nil {
		return math.NaN(), fmt.Errorf("error in wget %q: %w", "EUR/USD", err)
	}
	path := "$.series.intraday.data[-1:][1]"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return math.NaN(), fmt.Errorf("error parsing %q: %q %w", "EUR/USD", path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	val, ok := jval.(float64)
	if !ok {
		return math.NaN(), fmt.Errorf("error parsing %q: %q %s %v", "EUR/USD", path, "not a float", jval)
	}
	return val, nil
}
