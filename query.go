package prolog

// Query iterates over the solutions of one Search call. Resolution in this
// engine is fully synchronous (spec.md §4.5 runs to completion and
// collects every solution before returning), so Query simply walks a
// pre-computed slice; it exists to give callers the teacher's familiar
// Next/Current/Close/Err shape rather than a raw []Env.
type Query struct {
	answers []Answer
	pos     int
	cur     Answer
	err     error
}

// QueryOption configures one Search call, mirroring the teacher's
// per-query option shape (distinct from the Runtime-level Option).
type QueryOption func(*queryConfig)

type queryConfig struct {
	env Env
}

// WithBindings seeds the query's initial environment, e.g. to query
// "likes(bob, X)" with X left free but other variables pre-bound.
func WithBindings(env Env) QueryOption {
	return func(c *queryConfig) { c.env = env }
}

// Query resolves goal against the runtime's database and returns an
// iterator over its solutions.
func (rt *Runtime) Query(goal Predicate, opts ...QueryOption) *Query {
	cfg := &queryConfig{env: NewEnv()}
	for _, opt := range opts {
		opt(cfg)
	}
	envs, err := rt.Search(Clause{Head: goal, Body: goal}, cfg.env)
	if err != nil {
		return &Query{err: err}
	}
	answers := make([]Answer, len(envs))
	for i, e := range envs {
		answers[i] = Answer{Env: e}
	}
	return &Query{answers: answers}
}

// Next advances to the next solution, returning false when exhausted or
// when the search errored.
func (q *Query) Next() bool {
	if q.err != nil || q.pos >= len(q.answers) {
		return false
	}
	q.cur = q.answers[q.pos]
	q.pos++
	return true
}

// Current returns the solution most recently returned by Next.
func (q *Query) Current() Answer { return q.cur }

// Err returns the error that aborted the search, if any.
func (q *Query) Err() error { return q.err }

// Close releases the query's resources. Search already runs to completion
// synchronously, so Close is a no-op; it exists so Query satisfies the
// same shape callers expect from the teacher's streaming Query type.
func (q *Query) Close() error { return nil }

// QueryOnce runs goal and returns its first solution, or ErrQueryFailed if
// it has none.
func (rt *Runtime) QueryOnce(goal Predicate, opts ...QueryOption) (Answer, error) {
	q := rt.Query(goal, opts...)
	defer q.Close()
	if q.Err() != nil {
		return Answer{}, q.Err()
	}
	if !q.Next() {
		return Answer{}, ErrQueryFailed
	}
	return q.Current(), nil
}
