package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSchema(t *testing.T) graphql.Schema {
	t.Helper()

	upload := graphql.NewScalar(graphql.ScalarConfig{
		Name:      "Upload",
		Serialize: func(v interface{}) interface{} { return nil },
		ParseValue: func(v interface{}) interface{} {
			if fh, ok := v.(*multipart.FileHeader); ok {
				return fh
			}
			return nil
		},
		ParseLiteral: func(ast.Value) interface{} { return nil },
	})

	s, err := graphql.NewSchema(graphql.SchemaConfig{
		Query: graphql.NewObject(graphql.ObjectConfig{
			Name: "Query",
			Fields: graphql.Fields{
				"greet": &graphql.Field{
					Type: graphql.String,
					Args: graphql.FieldConfigArgument{"name": &graphql.ArgumentConfig{Type: graphql.String}},
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						name, _ := p.Args["name"].(string)
						return "hello " + name, nil
					},
				},
			},
		}),
		Mutation: graphql.NewObject(graphql.ObjectConfig{
			Name: "Mutation",
			Fields: graphql.Fields{
				"fileName": &graphql.Field{
					Type: graphql.String,
					Args: graphql.FieldConfigArgument{"file": &graphql.ArgumentConfig{Type: graphql.NewNonNull(upload)}},
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						fh := p.Args["file"].(*multipart.FileHeader)
						return fh.Filename, nil
					},
				},
			},
		}),
	})
	require.NoError(t, err)
	return s
}

func serve(t *testing.T, req *http.Request) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return rec, NewGraphQLHandler(testSchema(t), zerolog.Nop()).Serve(c)
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp struct {
		Data   map[string]interface{}   `json:"data"`
		Errors []map[string]interface{} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Empty(t, resp.Errors)
	return resp.Data
}

func TestGraphQLHandler_JSON(t *testing.T) {
	body := `{"query":"query Greet($n: String) { greet(name: $n) }","variables":{"n":"tours"},"operationName":"Greet"}`
	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec, err := serve(t, req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "hello tours", decodeData(t, rec)["greet"])
}

func TestGraphQLHandler_GET(t *testing.T) {
	q := url.Values{}
	q.Set("query", "{ greet(name: \"get\") }")
	req := httptest.NewRequest(http.MethodGet, "/graphql?"+q.Encode(), nil)

	rec, err := serve(t, req)
	require.NoError(t, err)
	assert.Equal(t, "hello get", decodeData(t, rec)["greet"])
}

func TestGraphQLHandler_GETRejectsMutations(t *testing.T) {
	q := url.Values{}
	q.Set("query", "mutation { fileName }")
	req := httptest.NewRequest(http.MethodGet, "/graphql?"+q.Encode(), nil)

	_, err := serve(t, req)
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusMethodNotAllowed, he.Code)
}

func TestGraphQLHandler_BadRequests(t *testing.T) {
	cases := map[string]string{
		"invalid json":  `{"query":`,
		"missing query": `{"variables":{}}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

			_, err := serve(t, req)
			var he *echo.HTTPError
			require.ErrorAs(t, err, &he)
			assert.Equal(t, http.StatusBadRequest, he.Code)
		})
	}
}

func multipartRequest(t *testing.T, operations, fileMap string, files map[string]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("operations", operations))
	require.NoError(t, w.WriteField("map", fileMap))
	for part, filename := range files {
		fw, err := w.CreateFormFile(part, filename)
		require.NoError(t, err)
		_, err = fw.Write([]byte("image-bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/graphql", &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	return req
}

func TestGraphQLHandler_MultipartUpload(t *testing.T) {
	req := multipartRequest(t,
		`{"query":"mutation ($file: Upload!) { fileName(file: $file) }","variables":{"file":null}}`,
		`{"0":["variables.file"]}`,
		map[string]string{"0": "beach.png"},
	)

	rec, err := serve(t, req)
	require.NoError(t, err)
	assert.Equal(t, "beach.png", decodeData(t, rec)["fileName"])
}

func TestGraphQLHandler_MultipartMissingPart(t *testing.T) {
	req := multipartRequest(t,
		`{"query":"mutation ($file: Upload!) { fileName(file: $file) }","variables":{"file":null}}`,
		`{"1":["variables.file"]}`,
		map[string]string{"0": "beach.png"},
	)

	_, err := serve(t, req)
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestInjectFile(t *testing.T) {
	fh := &multipart.FileHeader{Filename: "a.png"}

	req := &graphqlRequest{Variables: map[string]interface{}{
		"files": []interface{}{nil, nil},
		"input": map[string]interface{}{"image": nil},
	}}
	require.NoError(t, injectFile(req, "variables.files.1", fh))
	require.NoError(t, injectFile(req, "variables.input.image", fh))
	assert.Same(t, fh, req.Variables["files"].([]interface{})[1])
	assert.Same(t, fh, req.Variables["input"].(map[string]interface{})["image"])

	assert.Error(t, injectFile(req, "operations.file", fh))
	assert.Error(t, injectFile(req, "variables.files.7", fh))
	assert.Error(t, injectFile(req, "variables.missing.file", fh))
}
