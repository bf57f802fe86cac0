package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
	"github.com/graphql-go/graphql/language/parser"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

const defaultMaxUploadMemory = 32 << 20

// GraphQLHandler serves the GraphQL endpoint over JSON, query strings and
// multipart requests.
type GraphQLHandler struct {
	schema graphql.Schema
	log    zerolog.Logger
}

func NewGraphQLHandler(schema graphql.Schema, log zerolog.Logger) *GraphQLHandler {
	return &GraphQLHandler{schema: schema, log: log}
}

// graphqlRequest is the body of a GraphQL-over-HTTP request.
type graphqlRequest struct {
	Query         string                 `json:"query"`
	Variables     map[string]interface{} `json:"variables"`
	OperationName string                 `json:"operationName"`
}

// Serve godoc
// @Summary      Execute a GraphQL operation
// @Description  Accepts {query, variables, operationName} as JSON, the GraphQL multipart request format for file uploads, or query-string parameters on GET (queries only).
// @Tags         graphql
// @Accept       json
// @Accept       mpfd
// @Produce      json
// @Param        Authorization  header  string  false  "Bearer token"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /graphql [post]
// @Router       /graphql [get]
func (h *GraphQLHandler) Serve(c echo.Context) error {
	req, err := h.decode(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if strings.TrimSpace(req.Query) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "query is required")
	}
	if c.Request().Method == http.MethodGet {
		if err := requireQueryOperation(req); err != nil {
			return echo.NewHTTPError(http.StatusMethodNotAllowed, err.Error())
		}
	}

	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        c.Request().Context(),
	})
	if result.HasErrors() {
		h.log.Debug().Interface("errors", result.Errors).Str("operation", req.OperationName).Msg("graphql operation returned errors")
	}
	return c.JSON(http.StatusOK, result)
}

func (h *GraphQLHandler) decode(c echo.Context) (*graphqlRequest, error) {
	r := c.Request()
	if r.Method == http.MethodGet {
		return decodeQueryString(c)
	}

	ctype := r.Header.Get(echo.HeaderContentType)
	if strings.HasPrefix(ctype, echo.MIMEMultipartForm) {
		return decodeMultipart(r)
	}

	var req graphqlRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, fmt.Errorf("invalid request body: %w", err)
	}
	return &req, nil
}

func decodeQueryString(c echo.Context) (*graphqlRequest, error) {
	req := &graphqlRequest{
		Query:         c.QueryParam("query"),
		OperationName: c.QueryParam("operationName"),
	}
	if raw := c.QueryParam("variables"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.Variables); err != nil {
			return nil, fmt.Errorf("invalid variables: %w", err)
		}
	}
	return req, nil
}

// decodeMultipart implements the GraphQL multipart request format: an
// "operations" field with the request, a "map" field from file part names to
// variable paths, and the file parts themselves.
func decodeMultipart(r *http.Request) (*graphqlRequest, error) {
	if err := r.ParseMultipartForm(defaultMaxUploadMemory); err != nil {
		return nil, fmt.Errorf("invalid multipart request: %w", err)
	}

	var req graphqlRequest
	if err := json.Unmarshal([]byte(r.FormValue("operations")), &req); err != nil {
		return nil, fmt.Errorf("invalid operations field: %w", err)
	}

	var fileMap map[string][]string
	if raw := r.FormValue("map"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &fileMap); err != nil {
			return nil, fmt.Errorf("invalid map field: %w", err)
		}
	}

	for part, paths := range fileMap {
		files := r.MultipartForm.File[part]
		if len(files) == 0 {
			return nil, fmt.Errorf("missing file part %q", part)
		}
		for _, path := range paths {
			if err := injectFile(&req, path, files[0]); err != nil {
				return nil, err
			}
		}
	}
	return &req, nil
}

// injectFile places fh at a dotted path such as "variables.file" or
// "variables.files.0".
func injectFile(req *graphqlRequest, path string, fh *multipart.FileHeader) error {
	segments := strings.Split(path, ".")
	if len(segments) < 2 || segments[0] != "variables" {
		return fmt.Errorf("unsupported file path %q", path)
	}
	if req.Variables == nil {
		req.Variables = map[string]interface{}{}
	}

	var container interface{} = req.Variables
	for i, seg := range segments[1:] {
		last := i == len(segments)-2
		switch node := container.(type) {
		case map[string]interface{}:
			if last {
				node[seg] = fh
				return nil
			}
			container = node[seg]
		case []interface{}:
			idx, err := strconv.Atoi(seg)
			if err != nil || idx < 0 || idx >= len(node) {
				return fmt.Errorf("invalid file path %q", path)
			}
			if last {
				node[idx] = fh
				return nil
			}
			container = node[idx]
		default:
			return fmt.Errorf("invalid file path %q", path)
		}
	}
	return fmt.Errorf("invalid file path %q", path)
}

var errMutationOverGet = errors.New("mutations must be sent with POST")

// requireQueryOperation rejects GET requests whose selected operation is not
// a query.
func requireQueryOperation(req *graphqlRequest) error {
	doc, err := parser.Parse(parser.ParseParams{Source: req.Query})
	if err != nil {
		// Syntax errors are reported by execution.
		return nil
	}
	for _, def := range doc.Definitions {
		op, ok := def.(*ast.OperationDefinition)
		if !ok {
			continue
		}
		if req.OperationName != "" && (op.Name == nil || op.Name.Value != req.OperationName) {
			continue
		}
		if op.Operation != ast.OperationTypeQuery {
			return errMutationOverGet
		}
	}
	return nil
}
