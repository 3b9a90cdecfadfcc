// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/taskwire/taskwire/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/taskwire/taskwire/ent/auditevent"
	"github.com/taskwire/taskwire/ent/conversationentry"
	"github.com/taskwire/taskwire/ent/deadletter"
	"github.com/taskwire/taskwire/ent/task"
	"github.com/taskwire/taskwire/ent/tasknote"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AuditEvent is the client for interacting with the AuditEvent builders.
	AuditEvent *AuditEventClient
	// ConversationEntry is the client for interacting with the ConversationEntry builders.
	ConversationEntry *ConversationEntryClient
	// DeadLetter is the client for interacting with the DeadLetter builders.
	DeadLetter *DeadLetterClient
	// Task is the client for interacting with the Task builders.
	Task *TaskClient
	// TaskNote is the client for interacting with the TaskNote builders.
	TaskNote *TaskNoteClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AuditEvent = NewAuditEventClient(c.config)
	c.ConversationEntry = NewConversationEntryClient(c.config)
	c.DeadLetter = NewDeadLetterClient(c.config)
	c.Task = NewTaskClient(c.config)
	c.TaskNote = NewTaskNoteClient(c.config)
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
		ctx:               ctx,
		config:            cfg,
		AuditEvent:        NewAuditEventClient(cfg),
		ConversationEntry: NewConversationEntryClient(cfg),
		DeadLetter:        NewDeadLetterClient(cfg),
		Task:              NewTaskClient(cfg),
		TaskNote:          NewTaskNoteClient(cfg),
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
		ctx:               ctx,
		config:            cfg,
		AuditEvent:        NewAuditEventClient(cfg),
		ConversationEntry: NewConversationEntryClient(cfg),
		DeadLetter:        NewDeadLetterClient(cfg),
		Task:              NewTaskClient(cfg),
		TaskNote:          NewTaskNoteClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AuditEvent.
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
	c.AuditEvent.Use(hooks...)
	c.ConversationEntry.Use(hooks...)
	c.DeadLetter.Use(hooks...)
	c.Task.Use(hooks...)
	c.TaskNote.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.AuditEvent.Intercept(interceptors...)
	c.ConversationEntry.Intercept(interceptors...)
	c.DeadLetter.Intercept(interceptors...)
	c.Task.Intercept(interceptors...)
	c.TaskNote.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AuditEventMutation:
		return c.AuditEvent.mutate(ctx, m)
	case *ConversationEntryMutation:
		return c.ConversationEntry.mutate(ctx, m)
	case *DeadLetterMutation:
		return c.DeadLetter.mutate(ctx, m)
	case *TaskMutation:
		return c.Task.mutate(ctx, m)
	case *TaskNoteMutation:
		return c.TaskNote.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AuditEventClient is a client for the AuditEvent schema.
type AuditEventClient struct {
	config
}

// NewAuditEventClient returns a client for the AuditEvent from the given config.
func NewAuditEventClient(c config) *AuditEventClient {
	return &AuditEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `auditevent.Hooks(f(g(h())))`.
func (c *AuditEventClient) Use(hooks ...Hook) {
	c.hooks.AuditEvent = append(c.hooks.AuditEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `auditevent.Intercept(f(g(h())))`.
func (c *AuditEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.AuditEvent = append(c.inters.AuditEvent, interceptors...)
}

// Create returns a builder for creating a AuditEvent entity.
func (c *AuditEventClient) Create() *AuditEventCreate {
	mutation := newAuditEventMutation(c.config, OpCreate)
	return &AuditEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AuditEvent entities.
func (c *AuditEventClient) CreateBulk(builders ...*AuditEventCreate) *AuditEventCreateBulk {
	return &AuditEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AuditEventClient) MapCreateBulk(slice any, setFunc func(*AuditEventCreate, int)) *AuditEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AuditEventCreateBulk{err: fmt.Errorf("calling to AuditEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AuditEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AuditEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AuditEvent.
func (c *AuditEventClient) Update() *AuditEventUpdate {
	mutation := newAuditEventMutation(c.config, OpUpdate)
	return &AuditEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AuditEventClient) UpdateOne(_m *AuditEvent) *AuditEventUpdateOne {
	mutation := newAuditEventMutation(c.config, OpUpdateOne, withAuditEvent(_m))
	return &AuditEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AuditEventClient) UpdateOneID(id int) *AuditEventUpdateOne {
	mutation := newAuditEventMutation(c.config, OpUpdateOne, withAuditEventID(id))
	return &AuditEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AuditEvent.
func (c *AuditEventClient) Delete() *AuditEventDelete {
	mutation := newAuditEventMutation(c.config, OpDelete)
	return &AuditEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AuditEventClient) DeleteOne(_m *AuditEvent) *AuditEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AuditEventClient) DeleteOneID(id int) *AuditEventDeleteOne {
	builder := c.Delete().Where(auditevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AuditEventDeleteOne{builder}
}

// Query returns a query builder for AuditEvent.
func (c *AuditEventClient) Query() *AuditEventQuery {
	return &AuditEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAuditEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a AuditEvent entity by its id.
func (c *AuditEventClient) Get(ctx context.Context, id int) (*AuditEvent, error) {
	return c.Query().Where(auditevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AuditEventClient) GetX(ctx context.Context, id int) *AuditEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTask queries the task edge of a AuditEvent.
func (c *AuditEventClient) QueryTask(_m *AuditEvent) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(auditevent.Table, auditevent.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, auditevent.TaskTable, auditevent.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AuditEventClient) Hooks() []Hook {
	return c.hooks.AuditEvent
}

// Interceptors returns the client interceptors.
func (c *AuditEventClient) Interceptors() []Interceptor {
	return c.inters.AuditEvent
}

func (c *AuditEventClient) mutate(ctx context.Context, m *AuditEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AuditEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AuditEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AuditEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AuditEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AuditEvent mutation op: %q", m.Op())
	}
}

// ConversationEntryClient is a client for the ConversationEntry schema.
type ConversationEntryClient struct {
	config
}

// NewConversationEntryClient returns a client for the ConversationEntry from the given config.
func NewConversationEntryClient(c config) *ConversationEntryClient {
	return &ConversationEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `conversationentry.Hooks(f(g(h())))`.
func (c *ConversationEntryClient) Use(hooks ...Hook) {
	c.hooks.ConversationEntry = append(c.hooks.ConversationEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `conversationentry.Intercept(f(g(h())))`.
func (c *ConversationEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.ConversationEntry = append(c.inters.ConversationEntry, interceptors...)
}

// Create returns a builder for creating a ConversationEntry entity.
func (c *ConversationEntryClient) Create() *ConversationEntryCreate {
	mutation := newConversationEntryMutation(c.config, OpCreate)
	return &ConversationEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ConversationEntry entities.
func (c *ConversationEntryClient) CreateBulk(builders ...*ConversationEntryCreate) *ConversationEntryCreateBulk {
	return &ConversationEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ConversationEntryClient) MapCreateBulk(slice any, setFunc func(*ConversationEntryCreate, int)) *ConversationEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ConversationEntryCreateBulk{err: fmt.Errorf("calling to ConversationEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ConversationEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ConversationEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ConversationEntry.
func (c *ConversationEntryClient) Update() *ConversationEntryUpdate {
	mutation := newConversationEntryMutation(c.config, OpUpdate)
	return &ConversationEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ConversationEntryClient) UpdateOne(_m *ConversationEntry) *ConversationEntryUpdateOne {
	mutation := newConversationEntryMutation(c.config, OpUpdateOne, withConversationEntry(_m))
	return &ConversationEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ConversationEntryClient) UpdateOneID(id string) *ConversationEntryUpdateOne {
	mutation := newConversationEntryMutation(c.config, OpUpdateOne, withConversationEntryID(id))
	return &ConversationEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ConversationEntry.
func (c *ConversationEntryClient) Delete() *ConversationEntryDelete {
	mutation := newConversationEntryMutation(c.config, OpDelete)
	return &ConversationEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ConversationEntryClient) DeleteOne(_m *ConversationEntry) *ConversationEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ConversationEntryClient) DeleteOneID(id string) *ConversationEntryDeleteOne {
	builder := c.Delete().Where(conversationentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ConversationEntryDeleteOne{builder}
}

// Query returns a query builder for ConversationEntry.
func (c *ConversationEntryClient) Query() *ConversationEntryQuery {
	return &ConversationEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeConversationEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a ConversationEntry entity by its id.
func (c *ConversationEntryClient) Get(ctx context.Context, id string) (*ConversationEntry, error) {
	return c.Query().Where(conversationentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ConversationEntryClient) GetX(ctx context.Context, id string) *ConversationEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTask queries the task edge of a ConversationEntry.
func (c *ConversationEntryClient) QueryTask(_m *ConversationEntry) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(conversationentry.Table, conversationentry.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, conversationentry.TaskTable, conversationentry.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ConversationEntryClient) Hooks() []Hook {
	return c.hooks.ConversationEntry
}

// Interceptors returns the client interceptors.
func (c *ConversationEntryClient) Interceptors() []Interceptor {
	return c.inters.ConversationEntry
}

func (c *ConversationEntryClient) mutate(ctx context.Context, m *ConversationEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ConversationEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ConversationEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ConversationEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ConversationEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ConversationEntry mutation op: %q", m.Op())
	}
}

// DeadLetterClient is a client for the DeadLetter schema.
type DeadLetterClient struct {
	config
}

// NewDeadLetterClient returns a client for the DeadLetter from the given config.
func NewDeadLetterClient(c config) *DeadLetterClient {
	return &DeadLetterClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `deadletter.Hooks(f(g(h())))`.
func (c *DeadLetterClient) Use(hooks ...Hook) {
	c.hooks.DeadLetter = append(c.hooks.DeadLetter, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `deadletter.Intercept(f(g(h())))`.
func (c *DeadLetterClient) Intercept(interceptors ...Interceptor) {
	c.inters.DeadLetter = append(c.inters.DeadLetter, interceptors...)
}

// Create returns a builder for creating a DeadLetter entity.
func (c *DeadLetterClient) Create() *DeadLetterCreate {
	mutation := newDeadLetterMutation(c.config, OpCreate)
	return &DeadLetterCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DeadLetter entities.
func (c *DeadLetterClient) CreateBulk(builders ...*DeadLetterCreate) *DeadLetterCreateBulk {
	return &DeadLetterCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DeadLetterClient) MapCreateBulk(slice any, setFunc func(*DeadLetterCreate, int)) *DeadLetterCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DeadLetterCreateBulk{err: fmt.Errorf("calling to DeadLetterClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DeadLetterCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DeadLetterCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DeadLetter.
func (c *DeadLetterClient) Update() *DeadLetterUpdate {
	mutation := newDeadLetterMutation(c.config, OpUpdate)
	return &DeadLetterUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DeadLetterClient) UpdateOne(_m *DeadLetter) *DeadLetterUpdateOne {
	mutation := newDeadLetterMutation(c.config, OpUpdateOne, withDeadLetter(_m))
	return &DeadLetterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DeadLetterClient) UpdateOneID(id string) *DeadLetterUpdateOne {
	mutation := newDeadLetterMutation(c.config, OpUpdateOne, withDeadLetterID(id))
	return &DeadLetterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DeadLetter.
func (c *DeadLetterClient) Delete() *DeadLetterDelete {
	mutation := newDeadLetterMutation(c.config, OpDelete)
	return &DeadLetterDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DeadLetterClient) DeleteOne(_m *DeadLetter) *DeadLetterDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DeadLetterClient) DeleteOneID(id string) *DeadLetterDeleteOne {
	builder := c.Delete().Where(deadletter.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DeadLetterDeleteOne{builder}
}

// Query returns a query builder for DeadLetter.
func (c *DeadLetterClient) Query() *DeadLetterQuery {
	return &DeadLetterQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDeadLetter},
		inters: c.Interceptors(),
	}
}

// Get returns a DeadLetter entity by its id.
func (c *DeadLetterClient) Get(ctx context.Context, id string) (*DeadLetter, error) {
	return c.Query().Where(deadletter.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DeadLetterClient) GetX(ctx context.Context, id string) *DeadLetter {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTask queries the task edge of a DeadLetter.
func (c *DeadLetterClient) QueryTask(_m *DeadLetter) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(deadletter.Table, deadletter.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, deadletter.TaskTable, deadletter.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DeadLetterClient) Hooks() []Hook {
	return c.hooks.DeadLetter
}

// Interceptors returns the client interceptors.
func (c *DeadLetterClient) Interceptors() []Interceptor {
	return c.inters.DeadLetter
}

func (c *DeadLetterClient) mutate(ctx context.Context, m *DeadLetterMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DeadLetterCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DeadLetterUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DeadLetterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DeadLetterDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DeadLetter mutation op: %q", m.Op())
	}
}

// TaskClient is a client for the Task schema.
type TaskClient struct {
	config
}

// NewTaskClient returns a client for the Task from the given config.
func NewTaskClient(c config) *TaskClient {
	return &TaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `task.Hooks(f(g(h())))`.
func (c *TaskClient) Use(hooks ...Hook) {
	c.hooks.Task = append(c.hooks.Task, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `task.Intercept(f(g(h())))`.
func (c *TaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.Task = append(c.inters.Task, interceptors...)
}

// Create returns a builder for creating a Task entity.
func (c *TaskClient) Create() *TaskCreate {
	mutation := newTaskMutation(c.config, OpCreate)
	return &TaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Task entities.
func (c *TaskClient) CreateBulk(builders ...*TaskCreate) *TaskCreateBulk {
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskClient) MapCreateBulk(slice any, setFunc func(*TaskCreate, int)) *TaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskCreateBulk{err: fmt.Errorf("calling to TaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Task.
func (c *TaskClient) Update() *TaskUpdate {
	mutation := newTaskMutation(c.config, OpUpdate)
	return &TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskClient) UpdateOne(_m *Task) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTask(_m))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskClient) UpdateOneID(id string) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTaskID(id))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Task.
func (c *TaskClient) Delete() *TaskDelete {
	mutation := newTaskMutation(c.config, OpDelete)
	return &TaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskClient) DeleteOne(_m *Task) *TaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskClient) DeleteOneID(id string) *TaskDeleteOne {
	builder := c.Delete().Where(task.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskDeleteOne{builder}
}

// Query returns a query builder for Task.
func (c *TaskClient) Query() *TaskQuery {
	return &TaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTask},
		inters: c.Interceptors(),
	}
}

// Get returns a Task entity by its id.
func (c *TaskClient) Get(ctx context.Context, id string) (*Task, error) {
	return c.Query().Where(task.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskClient) GetX(ctx context.Context, id string) *Task {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryNotes queries the notes edge of a Task.
func (c *TaskClient) QueryNotes(_m *Task) *TaskNoteQuery {
	query := (&TaskNoteClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(tasknote.Table, tasknote.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, task.NotesTable, task.NotesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryConversationEntries queries the conversation_entries edge of a Task.
func (c *TaskClient) QueryConversationEntries(_m *Task) *ConversationEntryQuery {
	query := (&ConversationEntryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(conversationentry.Table, conversationentry.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, task.ConversationEntriesTable, task.ConversationEntriesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDeadLetters queries the dead_letters edge of a Task.
func (c *TaskClient) QueryDeadLetters(_m *Task) *DeadLetterQuery {
	query := (&DeadLetterClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(deadletter.Table, deadletter.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, task.DeadLettersTable, task.DeadLettersColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAuditEvents queries the audit_events edge of a Task.
func (c *TaskClient) QueryAuditEvents(_m *Task) *AuditEventQuery {
	query := (&AuditEventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(auditevent.Table, auditevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, task.AuditEventsTable, task.AuditEventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TaskClient) Hooks() []Hook {
	return c.hooks.Task
}

// Interceptors returns the client interceptors.
func (c *TaskClient) Interceptors() []Interceptor {
	return c.inters.Task
}

func (c *TaskClient) mutate(ctx context.Context, m *TaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Task mutation op: %q", m.Op())
	}
}

// TaskNoteClient is a client for the TaskNote schema.
type TaskNoteClient struct {
	config
}

// NewTaskNoteClient returns a client for the TaskNote from the given config.
func NewTaskNoteClient(c config) *TaskNoteClient {
	return &TaskNoteClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tasknote.Hooks(f(g(h())))`.
func (c *TaskNoteClient) Use(hooks ...Hook) {
	c.hooks.TaskNote = append(c.hooks.TaskNote, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tasknote.Intercept(f(g(h())))`.
func (c *TaskNoteClient) Intercept(interceptors ...Interceptor) {
	c.inters.TaskNote = append(c.inters.TaskNote, interceptors...)
}

// Create returns a builder for creating a TaskNote entity.
func (c *TaskNoteClient) Create() *TaskNoteCreate {
	mutation := newTaskNoteMutation(c.config, OpCreate)
	return &TaskNoteCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TaskNote entities.
func (c *TaskNoteClient) CreateBulk(builders ...*TaskNoteCreate) *TaskNoteCreateBulk {
	return &TaskNoteCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskNoteClient) MapCreateBulk(slice any, setFunc func(*TaskNoteCreate, int)) *TaskNoteCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskNoteCreateBulk{err: fmt.Errorf("calling to TaskNoteClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskNoteCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskNoteCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TaskNote.
func (c *TaskNoteClient) Update() *TaskNoteUpdate {
	mutation := newTaskNoteMutation(c.config, OpUpdate)
	return &TaskNoteUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskNoteClient) UpdateOne(_m *TaskNote) *TaskNoteUpdateOne {
	mutation := newTaskNoteMutation(c.config, OpUpdateOne, withTaskNote(_m))
	return &TaskNoteUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskNoteClient) UpdateOneID(id string) *TaskNoteUpdateOne {
	mutation := newTaskNoteMutation(c.config, OpUpdateOne, withTaskNoteID(id))
	return &TaskNoteUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TaskNote.
func (c *TaskNoteClient) Delete() *TaskNoteDelete {
	mutation := newTaskNoteMutation(c.config, OpDelete)
	return &TaskNoteDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskNoteClient) DeleteOne(_m *TaskNote) *TaskNoteDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskNoteClient) DeleteOneID(id string) *TaskNoteDeleteOne {
	builder := c.Delete().Where(tasknote.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskNoteDeleteOne{builder}
}

// Query returns a query builder for TaskNote.
func (c *TaskNoteClient) Query() *TaskNoteQuery {
	return &TaskNoteQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTaskNote},
		inters: c.Interceptors(),
	}
}

// Get returns a TaskNote entity by its id.
func (c *TaskNoteClient) Get(ctx context.Context, id string) (*TaskNote, error) {
	return c.Query().Where(tasknote.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskNoteClient) GetX(ctx context.Context, id string) *TaskNote {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTask queries the task edge of a TaskNote.
func (c *TaskNoteClient) QueryTask(_m *TaskNote) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(tasknote.Table, tasknote.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, tasknote.TaskTable, tasknote.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TaskNoteClient) Hooks() []Hook {
	return c.hooks.TaskNote
}

// Interceptors returns the client interceptors.
func (c *TaskNoteClient) Interceptors() []Interceptor {
	return c.inters.TaskNote
}

func (c *TaskNoteClient) mutate(ctx context.Context, m *TaskNoteMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskNoteCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskNoteUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskNoteUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskNoteDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TaskNote mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AuditEvent, ConversationEntry, DeadLetter, Task, TaskNote []ent.Hook
	}
	inters struct {
		AuditEvent, ConversationEntry, DeadLetter, Task, TaskNote []ent.Interceptor
	}
)
