package transit

import (
    "context"
    "encoding/json"
    "errors"
    "fmt"
    "net/http"
    "net/url"
    "strconv"
    "time"
)

const (
    railBaseURL        = "http://apis.data.go.kr/1613000/TrainInfoService/getStrtpntAlocFndTrainInfo"
    railStationListURL = "http://apis.data.go.kr/1613000/TrainInfoService/getCtyAcctoTrainSttnList"
    busBaseURL         = "http://apis.data.go.kr/1613000/ExpBusInfoService/getStrtpntAlocFndExpbusInfo"

    queryTimeout = 10 * time.Second
    numOfRows    = 100
)

// QueryErrorKind classifies upstream query failures.
type QueryErrorKind string

const (
    KindTimeout QueryErrorKind = "timeout"
    KindHTTP    QueryErrorKind = "http_error"
    KindDecode  QueryErrorKind = "decode_error"
    KindEmpty   QueryErrorKind = "upstream_empty"
)

// QueryError reports an upstream failure as a value. It is always recovered
// by fallback data and never reaches the HTTP boundary.
type QueryError struct {
    Kind    QueryErrorKind
    Status  int
    Message string
}

func (e *QueryError) Error() string {
    if e.Status != 0 {
        return fmt.Sprintf("transit query %s (status %d): %s", e.Kind, e.Status, e.Message)
    }
    return fmt.Sprintf("transit query %s: %s", e.Kind, e.Message)
}

// RawItem is one undecoded upstream schedule entry. Field names vary in
// casing between deployments, so extraction stays dynamic.
type RawItem map[string]interface{}

// itemContainer absorbs the upstream quirk of returning a single match as an
// object and multiple matches as an array. All dict-or-list branching for
// the response envelope lives here.
type itemContainer struct {
    Items []RawItem
}

func (c *itemContainer) UnmarshalJSON(data []byte) error {
    var list []RawItem
    if err := json.Unmarshal(data, &list); err == nil {
        c.Items = list
        return nil
    }
    var single RawItem
    if err := json.Unmarshal(data, &single); err == nil {
        if len(single) > 0 {
            c.Items = []RawItem{single}
        }
        return nil
    }
    // Empty result sets arrive as "" or null
    var s string
    if err := json.Unmarshal(data, &s); err == nil {
        return nil
    }
    return fmt.Errorf("unexpected item container shape")
}

// itemsWrapper tolerates the empty-result quirk of the envelope: with no
// matches the "items" member is the empty string instead of an object.
type itemsWrapper struct {
    Item itemContainer `json:"item"`
}

func (iw *itemsWrapper) UnmarshalJSON(data []byte) error {
    var s string
    if err := json.Unmarshal(data, &s); err == nil {
        return nil
    }
    type plain itemsWrapper
    var p plain
    if err := json.Unmarshal(data, &p); err != nil {
        return err
    }
    *iw = itemsWrapper(p)
    return nil
}

type upstreamEnvelope struct {
    Response struct {
        Header struct {
            ResultCode string `json:"resultCode"`
            ResultMsg  string `json:"resultMsg"`
        } `json:"header"`
        Body struct {
            Items      itemsWrapper `json:"items"`
            TotalCount int          `json:"totalCount"`
        } `json:"body"`
    } `json:"response"`
}

// Client queries the TAGO rail and ExpBus upstream services.
type Client struct {
    httpClient     *http.Client
    railURL        string
    stationListURL string
    busURL         string
    tagoKey        string
    expBusKey      string
}

// NewClient creates a transit client with the fixed 10-second call budget.
func NewClient(tagoKey, expBusKey string) *Client {
    return &Client{
        httpClient:     &http.Client{Timeout: queryTimeout},
        railURL:        railBaseURL,
        stationListURL: railStationListURL,
        busURL:         busBaseURL,
        tagoKey:        tagoKey,
        expBusKey:      expBusKey,
    }
}

// QueryRail fetches rail departures between two station codes on a
// YYYYMMDD date.
func (c *Client) QueryRail(ctx context.Context, depCode, arrCode, date string) ([]RawItem, error) {
    params := url.Values{}
    params.Set("serviceKey", c.tagoKey)
    params.Set("pageNo", "1")
    params.Set("numOfRows", strconv.Itoa(numOfRows))
    params.Set("_type", "json")
    params.Set("depPlaceId", depCode)
    params.Set("arrPlaceId", arrCode)
    params.Set("depPlandTime", date)
    return c.fetchItems(ctx, c.railURL, params)
}

// QueryBus fetches express bus departures between two terminal IDs on a
// YYYYMMDD date.
func (c *Client) QueryBus(ctx context.Context, depID, arrID, date string) ([]RawItem, error) {
    params := url.Values{}
    params.Set("serviceKey", c.expBusKey)
    params.Set("depTerminalId", depID)
    params.Set("arrTerminalId", arrID)
    params.Set("depPlandTime", date)
    params.Set("numOfRows", strconv.Itoa(numOfRows))
    params.Set("pageNo", "1")
    params.Set("_type", "json")
    return c.fetchItems(ctx, c.busURL, params)
}

// QueryStations fetches the rail station list for one city code.
func (c *Client) QueryStations(ctx context.Context, cityCode int) ([]RawItem, error) {
    params := url.Values{}
    params.Set("serviceKey", c.tagoKey)
    params.Set("pageNo", "1")
    params.Set("numOfRows", strconv.Itoa(numOfRows))
    params.Set("_type", "json")
    params.Set("cityCode", strconv.Itoa(cityCode))
    return c.fetchItems(ctx, c.stationListURL, params)
}

func (c *Client) fetchItems(ctx context.Context, baseURL string, params url.Values) ([]RawItem, error) {
    req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"?"+params.Encode(), nil)
    if err != nil {
        return nil, &QueryError{Kind: KindHTTP, Message: err.Error()}
    }

    resp, err := c.httpClient.Do(req)
    if err != nil {
        if isTimeout(err) {
            return nil, &QueryError{Kind: KindTimeout, Message: err.Error()}
        }
        return nil, &QueryError{Kind: KindHTTP, Message: err.Error()}
    }
    defer resp.Body.Close()

    if resp.StatusCode != http.StatusOK {
        return nil, &QueryError{Kind: KindHTTP, Status: resp.StatusCode, Message: "unexpected status"}
    }

    var envelope upstreamEnvelope
    if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
        return nil, &QueryError{Kind: KindDecode, Message: err.Error()}
    }

    if rc := envelope.Response.Header.ResultCode; rc != "" && rc != "00" {
        return nil, &QueryError{Kind: KindHTTP, Message: fmt.Sprintf("upstream result code %s: %s", rc, envelope.Response.Header.ResultMsg)}
    }

    items := envelope.Response.Body.Items.Item.Items
    if len(items) == 0 {
        return nil, &QueryError{Kind: KindEmpty, Message: "no items in response"}
    }
    return items, nil
}

func isTimeout(err error) bool {
    if errors.Is(err, context.DeadlineExceeded) {
        return true
    }
    var netErr interface{ Timeout() bool }
    return errors.As(err, &netErr) && netErr.Timeout()
}
