// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/teerapat-ng/docbox/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/teerapat-ng/docbox/gen/ent/attacheddocument"
	"github.com/teerapat-ng/docbox/gen/ent/box"
	"github.com/teerapat-ng/docbox/gen/ent/business"
	"github.com/teerapat-ng/docbox/gen/ent/extraction"
	"github.com/teerapat-ng/docbox/gen/ent/fieldoverride"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AttachedDocument is the client for interacting with the AttachedDocument builders.
	AttachedDocument *AttachedDocumentClient
	// Box is the client for interacting with the Box builders.
	Box *BoxClient
	// Business is the client for interacting with the Business builders.
	Business *BusinessClient
	// Extraction is the client for interacting with the Extraction builders.
	Extraction *ExtractionClient
	// FieldOverride is the client for interacting with the FieldOverride builders.
	FieldOverride *FieldOverrideClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AttachedDocument = NewAttachedDocumentClient(c.config)
	c.Box = NewBoxClient(c.config)
	c.Business = NewBusinessClient(c.config)
	c.Extraction = NewExtractionClient(c.config)
	c.FieldOverride = NewFieldOverrideClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		AttachedDocument: NewAttachedDocumentClient(cfg),
		Box:              NewBoxClient(cfg),
		Business:         NewBusinessClient(cfg),
		Extraction:       NewExtractionClient(cfg),
		FieldOverride:    NewFieldOverrideClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		AttachedDocument: NewAttachedDocumentClient(cfg),
		Box:              NewBoxClient(cfg),
		Business:         NewBusinessClient(cfg),
		Extraction:       NewExtractionClient(cfg),
		FieldOverride:    NewFieldOverrideClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AttachedDocument.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.AttachedDocument.Use(hooks...)
	c.Box.Use(hooks...)
	c.Business.Use(hooks...)
	c.Extraction.Use(hooks...)
	c.FieldOverride.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.AttachedDocument.Intercept(interceptors...)
	c.Box.Intercept(interceptors...)
	c.Business.Intercept(interceptors...)
	c.Extraction.Intercept(interceptors...)
	c.FieldOverride.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AttachedDocumentMutation:
		return c.AttachedDocument.mutate(ctx, m)
	case *BoxMutation:
		return c.Box.mutate(ctx, m)
	case *BusinessMutation:
		return c.Business.mutate(ctx, m)
	case *ExtractionMutation:
		return c.Extraction.mutate(ctx, m)
	case *FieldOverrideMutation:
		return c.FieldOverride.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AttachedDocumentClient is a client for the AttachedDocument schema.
type AttachedDocumentClient struct {
	config
}

// NewAttachedDocumentClient returns a client for the AttachedDocument from the given config.
func NewAttachedDocumentClient(c config) *AttachedDocumentClient {
	return &AttachedDocumentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `attacheddocument.Hooks(f(g(h())))`.
func (c *AttachedDocumentClient) Use(hooks ...Hook) {
	c.hooks.AttachedDocument = append(c.hooks.AttachedDocument, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `attacheddocument.Intercept(f(g(h())))`.
func (c *AttachedDocumentClient) Intercept(interceptors ...Interceptor) {
	c.inters.AttachedDocument = append(c.inters.AttachedDocument, interceptors...)
}

// Create returns a builder for creating a AttachedDocument entity.
func (c *AttachedDocumentClient) Create() *AttachedDocumentCreate {
	mutation := newAttachedDocumentMutation(c.config, OpCreate)
	return &AttachedDocumentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AttachedDocument entities.
func (c *AttachedDocumentClient) CreateBulk(builders ...*AttachedDocumentCreate) *AttachedDocumentCreateBulk {
	return &AttachedDocumentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AttachedDocumentClient) MapCreateBulk(slice any, setFunc func(*AttachedDocumentCreate, int)) *AttachedDocumentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AttachedDocumentCreateBulk{err: fmt.Errorf("calling to AttachedDocumentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AttachedDocumentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AttachedDocumentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AttachedDocument.
func (c *AttachedDocumentClient) Update() *AttachedDocumentUpdate {
	mutation := newAttachedDocumentMutation(c.config, OpUpdate)
	return &AttachedDocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AttachedDocumentClient) UpdateOne(_m *AttachedDocument) *AttachedDocumentUpdateOne {
	mutation := newAttachedDocumentMutation(c.config, OpUpdateOne, withAttachedDocument(_m))
	return &AttachedDocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AttachedDocumentClient) UpdateOneID(id uuid.UUID) *AttachedDocumentUpdateOne {
	mutation := newAttachedDocumentMutation(c.config, OpUpdateOne, withAttachedDocumentID(id))
	return &AttachedDocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AttachedDocument.
func (c *AttachedDocumentClient) Delete() *AttachedDocumentDelete {
	mutation := newAttachedDocumentMutation(c.config, OpDelete)
	return &AttachedDocumentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AttachedDocumentClient) DeleteOne(_m *AttachedDocument) *AttachedDocumentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AttachedDocumentClient) DeleteOneID(id uuid.UUID) *AttachedDocumentDeleteOne {
	builder := c.Delete().Where(attacheddocument.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AttachedDocumentDeleteOne{builder}
}

// Query returns a query builder for AttachedDocument.
func (c *AttachedDocumentClient) Query() *AttachedDocumentQuery {
	return &AttachedDocumentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAttachedDocument},
		inters: c.Interceptors(),
	}
}

// Get returns a AttachedDocument entity by its id.
func (c *AttachedDocumentClient) Get(ctx context.Context, id uuid.UUID) (*AttachedDocument, error) {
	return c.Query().Where(attacheddocument.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AttachedDocumentClient) GetX(ctx context.Context, id uuid.UUID) *AttachedDocument {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryBox queries the box edge of a AttachedDocument.
func (c *AttachedDocumentClient) QueryBox(_m *AttachedDocument) *BoxQuery {
	query := (&BoxClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(attacheddocument.Table, attacheddocument.FieldID, id),
			sqlgraph.To(box.Table, box.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, attacheddocument.BoxTable, attacheddocument.BoxColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryExtractions queries the extractions edge of a AttachedDocument.
func (c *AttachedDocumentClient) QueryExtractions(_m *AttachedDocument) *ExtractionQuery {
	query := (&ExtractionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(attacheddocument.Table, attacheddocument.FieldID, id),
			sqlgraph.To(extraction.Table, extraction.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, attacheddocument.ExtractionsTable, attacheddocument.ExtractionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AttachedDocumentClient) Hooks() []Hook {
	return c.hooks.AttachedDocument
}

// Interceptors returns the client interceptors.
func (c *AttachedDocumentClient) Interceptors() []Interceptor {
	return c.inters.AttachedDocument
}

func (c *AttachedDocumentClient) mutate(ctx context.Context, m *AttachedDocumentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AttachedDocumentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AttachedDocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AttachedDocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AttachedDocumentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AttachedDocument mutation op: %q", m.Op())
	}
}

// BoxClient is a client for the Box schema.
type BoxClient struct {
	config
}

// NewBoxClient returns a client for the Box from the given config.
func NewBoxClient(c config) *BoxClient {
	return &BoxClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `box.Hooks(f(g(h())))`.
func (c *BoxClient) Use(hooks ...Hook) {
	c.hooks.Box = append(c.hooks.Box, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `box.Intercept(f(g(h())))`.
func (c *BoxClient) Intercept(interceptors ...Interceptor) {
	c.inters.Box = append(c.inters.Box, interceptors...)
}

// Create returns a builder for creating a Box entity.
func (c *BoxClient) Create() *BoxCreate {
	mutation := newBoxMutation(c.config, OpCreate)
	return &BoxCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Box entities.
func (c *BoxClient) CreateBulk(builders ...*BoxCreate) *BoxCreateBulk {
	return &BoxCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BoxClient) MapCreateBulk(slice any, setFunc func(*BoxCreate, int)) *BoxCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BoxCreateBulk{err: fmt.Errorf("calling to BoxClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BoxCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BoxCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Box.
func (c *BoxClient) Update() *BoxUpdate {
	mutation := newBoxMutation(c.config, OpUpdate)
	return &BoxUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BoxClient) UpdateOne(_m *Box) *BoxUpdateOne {
	mutation := newBoxMutation(c.config, OpUpdateOne, withBox(_m))
	return &BoxUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BoxClient) UpdateOneID(id uuid.UUID) *BoxUpdateOne {
	mutation := newBoxMutation(c.config, OpUpdateOne, withBoxID(id))
	return &BoxUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Box.
func (c *BoxClient) Delete() *BoxDelete {
	mutation := newBoxMutation(c.config, OpDelete)
	return &BoxDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BoxClient) DeleteOne(_m *Box) *BoxDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BoxClient) DeleteOneID(id uuid.UUID) *BoxDeleteOne {
	builder := c.Delete().Where(box.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BoxDeleteOne{builder}
}

// Query returns a query builder for Box.
func (c *BoxClient) Query() *BoxQuery {
	return &BoxQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBox},
		inters: c.Interceptors(),
	}
}

// Get returns a Box entity by its id.
func (c *BoxClient) Get(ctx context.Context, id uuid.UUID) (*Box, error) {
	return c.Query().Where(box.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BoxClient) GetX(ctx context.Context, id uuid.UUID) *Box {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryBusiness queries the business edge of a Box.
func (c *BoxClient) QueryBusiness(_m *Box) *BusinessQuery {
	query := (&BusinessClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(box.Table, box.FieldID, id),
			sqlgraph.To(business.Table, business.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, box.BusinessTable, box.BusinessColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDocuments queries the documents edge of a Box.
func (c *BoxClient) QueryDocuments(_m *Box) *AttachedDocumentQuery {
	query := (&AttachedDocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(box.Table, box.FieldID, id),
			sqlgraph.To(attacheddocument.Table, attacheddocument.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, box.DocumentsTable, box.DocumentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BoxClient) Hooks() []Hook {
	return c.hooks.Box
}

// Interceptors returns the client interceptors.
func (c *BoxClient) Interceptors() []Interceptor {
	return c.inters.Box
}

func (c *BoxClient) mutate(ctx context.Context, m *BoxMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BoxCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BoxUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BoxUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BoxDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Box mutation op: %q", m.Op())
	}
}

// BusinessClient is a client for the Business schema.
type BusinessClient struct {
	config
}

// NewBusinessClient returns a client for the Business from the given config.
func NewBusinessClient(c config) *BusinessClient {
	return &BusinessClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `business.Hooks(f(g(h())))`.
func (c *BusinessClient) Use(hooks ...Hook) {
	c.hooks.Business = append(c.hooks.Business, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `business.Intercept(f(g(h())))`.
func (c *BusinessClient) Intercept(interceptors ...Interceptor) {
	c.inters.Business = append(c.inters.Business, interceptors...)
}

// Create returns a builder for creating a Business entity.
func (c *BusinessClient) Create() *BusinessCreate {
	mutation := newBusinessMutation(c.config, OpCreate)
	return &BusinessCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Business entities.
func (c *BusinessClient) CreateBulk(builders ...*BusinessCreate) *BusinessCreateBulk {
	return &BusinessCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BusinessClient) MapCreateBulk(slice any, setFunc func(*BusinessCreate, int)) *BusinessCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BusinessCreateBulk{err: fmt.Errorf("calling to BusinessClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BusinessCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BusinessCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Business.
func (c *BusinessClient) Update() *BusinessUpdate {
	mutation := newBusinessMutation(c.config, OpUpdate)
	return &BusinessUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BusinessClient) UpdateOne(_m *Business) *BusinessUpdateOne {
	mutation := newBusinessMutation(c.config, OpUpdateOne, withBusiness(_m))
	return &BusinessUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BusinessClient) UpdateOneID(id uuid.UUID) *BusinessUpdateOne {
	mutation := newBusinessMutation(c.config, OpUpdateOne, withBusinessID(id))
	return &BusinessUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Business.
func (c *BusinessClient) Delete() *BusinessDelete {
	mutation := newBusinessMutation(c.config, OpDelete)
	return &BusinessDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BusinessClient) DeleteOne(_m *Business) *BusinessDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BusinessClient) DeleteOneID(id uuid.UUID) *BusinessDeleteOne {
	builder := c.Delete().Where(business.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BusinessDeleteOne{builder}
}

// Query returns a query builder for Business.
func (c *BusinessClient) Query() *BusinessQuery {
	return &BusinessQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBusiness},
		inters: c.Interceptors(),
	}
}

// Get returns a Business entity by its id.
func (c *BusinessClient) Get(ctx context.Context, id uuid.UUID) (*Business, error) {
	return c.Query().Where(business.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BusinessClient) GetX(ctx context.Context, id uuid.UUID) *Business {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryBoxes queries the boxes edge of a Business.
func (c *BusinessClient) QueryBoxes(_m *Business) *BoxQuery {
	query := (&BoxClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(business.Table, business.FieldID, id),
			sqlgraph.To(box.Table, box.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, business.BoxesTable, business.BoxesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BusinessClient) Hooks() []Hook {
	return c.hooks.Business
}

// Interceptors returns the client interceptors.
func (c *BusinessClient) Interceptors() []Interceptor {
	return c.inters.Business
}

func (c *BusinessClient) mutate(ctx context.Context, m *BusinessMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BusinessCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BusinessUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BusinessUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BusinessDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Business mutation op: %q", m.Op())
	}
}

// ExtractionClient is a client for the Extraction schema.
type ExtractionClient struct {
	config
}

// NewExtractionClient returns a client for the Extraction from the given config.
func NewExtractionClient(c config) *ExtractionClient {
	return &ExtractionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `extraction.Hooks(f(g(h())))`.
func (c *ExtractionClient) Use(hooks ...Hook) {
	c.hooks.Extraction = append(c.hooks.Extraction, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `extraction.Intercept(f(g(h())))`.
func (c *ExtractionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Extraction = append(c.inters.Extraction, interceptors...)
}

// Create returns a builder for creating a Extraction entity.
func (c *ExtractionClient) Create() *ExtractionCreate {
	mutation := newExtractionMutation(c.config, OpCreate)
	return &ExtractionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Extraction entities.
func (c *ExtractionClient) CreateBulk(builders ...*ExtractionCreate) *ExtractionCreateBulk {
	return &ExtractionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExtractionClient) MapCreateBulk(slice any, setFunc func(*ExtractionCreate, int)) *ExtractionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExtractionCreateBulk{err: fmt.Errorf("calling to ExtractionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExtractionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExtractionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Extraction.
func (c *ExtractionClient) Update() *ExtractionUpdate {
	mutation := newExtractionMutation(c.config, OpUpdate)
	return &ExtractionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExtractionClient) UpdateOne(_m *Extraction) *ExtractionUpdateOne {
	mutation := newExtractionMutation(c.config, OpUpdateOne, withExtraction(_m))
	return &ExtractionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExtractionClient) UpdateOneID(id uuid.UUID) *ExtractionUpdateOne {
	mutation := newExtractionMutation(c.config, OpUpdateOne, withExtractionID(id))
	return &ExtractionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Extraction.
func (c *ExtractionClient) Delete() *ExtractionDelete {
	mutation := newExtractionMutation(c.config, OpDelete)
	return &ExtractionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExtractionClient) DeleteOne(_m *Extraction) *ExtractionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExtractionClient) DeleteOneID(id uuid.UUID) *ExtractionDeleteOne {
	builder := c.Delete().Where(extraction.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExtractionDeleteOne{builder}
}

// Query returns a query builder for Extraction.
func (c *ExtractionClient) Query() *ExtractionQuery {
	return &ExtractionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExtraction},
		inters: c.Interceptors(),
	}
}

// Get returns a Extraction entity by its id.
func (c *ExtractionClient) Get(ctx context.Context, id uuid.UUID) (*Extraction, error) {
	return c.Query().Where(extraction.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExtractionClient) GetX(ctx context.Context, id uuid.UUID) *Extraction {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocument queries the document edge of a Extraction.
func (c *ExtractionClient) QueryDocument(_m *Extraction) *AttachedDocumentQuery {
	query := (&AttachedDocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extraction.Table, extraction.FieldID, id),
			sqlgraph.To(attacheddocument.Table, attacheddocument.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extraction.DocumentTable, extraction.DocumentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExtractionClient) Hooks() []Hook {
	return c.hooks.Extraction
}

// Interceptors returns the client interceptors.
func (c *ExtractionClient) Interceptors() []Interceptor {
	return c.inters.Extraction
}

func (c *ExtractionClient) mutate(ctx context.Context, m *ExtractionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExtractionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExtractionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExtractionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExtractionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Extraction mutation op: %q", m.Op())
	}
}

// FieldOverrideClient is a client for the FieldOverride schema.
type FieldOverrideClient struct {
	config
}

// NewFieldOverrideClient returns a client for the FieldOverride from the given config.
func NewFieldOverrideClient(c config) *FieldOverrideClient {
	return &FieldOverrideClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `fieldoverride.Hooks(f(g(h())))`.
func (c *FieldOverrideClient) Use(hooks ...Hook) {
	c.hooks.FieldOverride = append(c.hooks.FieldOverride, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `fieldoverride.Intercept(f(g(h())))`.
func (c *FieldOverrideClient) Intercept(interceptors ...Interceptor) {
	c.inters.FieldOverride = append(c.inters.FieldOverride, interceptors...)
}

// Create returns a builder for creating a FieldOverride entity.
func (c *FieldOverrideClient) Create() *FieldOverrideCreate {
	mutation := newFieldOverrideMutation(c.config, OpCreate)
	return &FieldOverrideCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FieldOverride entities.
func (c *FieldOverrideClient) CreateBulk(builders ...*FieldOverrideCreate) *FieldOverrideCreateBulk {
	return &FieldOverrideCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FieldOverrideClient) MapCreateBulk(slice any, setFunc func(*FieldOverrideCreate, int)) *FieldOverrideCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FieldOverrideCreateBulk{err: fmt.Errorf("calling to FieldOverrideClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FieldOverrideCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FieldOverrideCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FieldOverride.
func (c *FieldOverrideClient) Update() *FieldOverrideUpdate {
	mutation := newFieldOverrideMutation(c.config, OpUpdate)
	return &FieldOverrideUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FieldOverrideClient) UpdateOne(_m *FieldOverride) *FieldOverrideUpdateOne {
	mutation := newFieldOverrideMutation(c.config, OpUpdateOne, withFieldOverride(_m))
	return &FieldOverrideUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FieldOverrideClient) UpdateOneID(id uuid.UUID) *FieldOverrideUpdateOne {
	mutation := newFieldOverrideMutation(c.config, OpUpdateOne, withFieldOverrideID(id))
	return &FieldOverrideUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FieldOverride.
func (c *FieldOverrideClient) Delete() *FieldOverrideDelete {
	mutation := newFieldOverrideMutation(c.config, OpDelete)
	return &FieldOverrideDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FieldOverrideClient) DeleteOne(_m *FieldOverride) *FieldOverrideDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FieldOverrideClient) DeleteOneID(id uuid.UUID) *FieldOverrideDeleteOne {
	builder := c.Delete().Where(fieldoverride.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FieldOverrideDeleteOne{builder}
}

// Query returns a query builder for FieldOverride.
func (c *FieldOverrideClient) Query() *FieldOverrideQuery {
	return &FieldOverrideQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFieldOverride},
		inters: c.Interceptors(),
	}
}

// Get returns a FieldOverride entity by its id.
func (c *FieldOverrideClient) Get(ctx context.Context, id uuid.UUID) (*FieldOverride, error) {
	return c.Query().Where(fieldoverride.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FieldOverrideClient) GetX(ctx context.Context, id uuid.UUID) *FieldOverride {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *FieldOverrideClient) Hooks() []Hook {
	return c.hooks.FieldOverride
}

// Interceptors returns the client interceptors.
func (c *FieldOverrideClient) Interceptors() []Interceptor {
	return c.inters.FieldOverride
}

func (c *FieldOverrideClient) mutate(ctx context.Context, m *FieldOverrideMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FieldOverrideCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FieldOverrideUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FieldOverrideUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FieldOverrideDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FieldOverride mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AttachedDocument, Box, Business, Extraction, FieldOverride []ent.Hook
	}
	inters struct {
		AttachedDocument, Box, Business, Extraction, FieldOverride []ent.Interceptor
	}
)
