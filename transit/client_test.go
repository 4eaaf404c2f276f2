package transit

import (
    "context"
    "net/http"
    "net/http/httptest"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func newTestClient(serverURL string) *Client {
    return &Client{
        httpClient:     &http.Client{Timeout: 2 * time.Second},
        railURL:        serverURL,
        stationListURL: serverURL,
        busURL:         serverURL,
        tagoKey:        "test-key",
        expBusKey:      "test-key",
    }
}

func envelopeBody(item string) string {
    return `{"response":{"header":{"resultCode":"00","resultMsg":"NORMAL SERVICE."},"body":{"items":{"item":` + item + `},"totalCount":1}}}`
}

func TestQueryRail_ArrayItems(t *testing.T) {
    server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        assert.Equal(t, "NAT010000", r.URL.Query().Get("depPlaceId"))
        assert.Equal(t, "NAT014445", r.URL.Query().Get("arrPlaceId"))
        assert.Equal(t, "20250101", r.URL.Query().Get("depPlandTime"))
        assert.Equal(t, "json", r.URL.Query().Get("_type"))
        w.Write([]byte(envelopeBody(`[{"trainNo":101},{"trainNo":102}]`)))
    }))
    defer server.Close()

    items, err := newTestClient(server.URL).QueryRail(context.Background(), "NAT010000", "NAT014445", "20250101")
    require.NoError(t, err)
    assert.Len(t, items, 2)
}

func TestQueryRail_SingleObjectItemBecomesList(t *testing.T) {
    server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        w.Write([]byte(envelopeBody(`{"trainNo":101,"depPlandTime":"202501010730"}`)))
    }))
    defer server.Close()

    items, err := newTestClient(server.URL).QueryRail(context.Background(), "a", "b", "20250101")
    require.NoError(t, err)
    require.Len(t, items, 1)
    assert.Equal(t, "202501010730", items[0]["depPlandTime"])
}

func TestQueryRail_HTTPError(t *testing.T) {
    server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        w.WriteHeader(http.StatusInternalServerError)
    }))
    defer server.Close()

    _, err := newTestClient(server.URL).QueryRail(context.Background(), "a", "b", "20250101")
    var qe *QueryError
    require.ErrorAs(t, err, &qe)
    assert.Equal(t, KindHTTP, qe.Kind)
    assert.Equal(t, http.StatusInternalServerError, qe.Status)
}

func TestQueryRail_DecodeError(t *testing.T) {
    server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        // The upstream answers XML when it rejects the service key
        w.Write([]byte(`<OpenAPI_ServiceResponse>SERVICE KEY IS NOT REGISTERED</OpenAPI_ServiceResponse>`))
    }))
    defer server.Close()

    _, err := newTestClient(server.URL).QueryRail(context.Background(), "a", "b", "20250101")
    var qe *QueryError
    require.ErrorAs(t, err, &qe)
    assert.Equal(t, KindDecode, qe.Kind)
}

func TestQueryRail_UpstreamResultCodeError(t *testing.T) {
    server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        w.Write([]byte(`{"response":{"header":{"resultCode":"22","resultMsg":"LIMITED NUMBER OF SERVICE REQUESTS EXCEEDS"},"body":{}}}`))
    }))
    defer server.Close()

    _, err := newTestClient(server.URL).QueryRail(context.Background(), "a", "b", "20250101")
    var qe *QueryError
    require.ErrorAs(t, err, &qe)
    assert.Equal(t, KindHTTP, qe.Kind)
}

func TestQueryRail_EmptyItems(t *testing.T) {
    server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        // Empty result sets arrive with an empty-string item container
        w.Write([]byte(`{"response":{"header":{"resultCode":"00"},"body":{"items":"","totalCount":0}}}`))
    }))
    defer server.Close()

    _, err := newTestClient(server.URL).QueryRail(context.Background(), "a", "b", "20250101")
    var qe *QueryError
    require.ErrorAs(t, err, &qe)
    assert.Equal(t, KindEmpty, qe.Kind)
}

func TestQueryBus_Params(t *testing.T) {
    server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        assert.Equal(t, "NAEK010", r.URL.Query().Get("depTerminalId"))
        assert.Equal(t, "NAEK700", r.URL.Query().Get("arrTerminalId"))
        assert.Equal(t, "100", r.URL.Query().Get("numOfRows"))
        assert.Equal(t, "1", r.URL.Query().Get("pageNo"))
        w.Write([]byte(envelopeBody(`[{"companyNm":"동양고속"}]`)))
    }))
    defer server.Close()

    items, err := newTestClient(server.URL).QueryBus(context.Background(), "NAEK010", "NAEK700", "20250101")
    require.NoError(t, err)
    require.Len(t, items, 1)
    assert.Equal(t, "동양고속", items[0]["companyNm"])
}

func TestQueryRail_Timeout(t *testing.T) {
    server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        time.Sleep(200 * time.Millisecond)
        w.Write([]byte(envelopeBody(`[]`)))
    }))
    defer server.Close()

    client := newTestClient(server.URL)
    client.httpClient.Timeout = 50 * time.Millisecond

    _, err := client.QueryRail(context.Background(), "a", "b", "20250101")
    var qe *QueryError
    require.ErrorAs(t, err, &qe)
    assert.Equal(t, KindTimeout, qe.Kind)
}
