package stack

import "go.trai.ch/zerr"

// LoadedConfig records that apps and files contributed configuration to
// the head frame. New entries are prepended (newest contributions
// first) and the frame's cached config mtime is reset so the next
// ConfigMtime call recomputes it. No-op on an empty stack.
// Fire-and-forget.
func (o *Owner) LoadedConfig(apps, files []string) {
	apps = append([]string(nil), apps...)
	files = append([]string(nil), files...)
	o.async(func(st *state) {
		if len(st.frames) == 0 {
			return
		}
		f := st.frames[0]
		f.ConfigApps = append(append([]string(nil), apps...), f.ConfigApps...)
		f.ConfigFiles = append(append([]string(nil), files...), f.ConfigFiles...)
		f.ConfigMtime = 0
	})
}

// ConfigMtime returns the staleness fingerprint of the head frame: the
// maximum modification time (UnixNano) across its contributing config
// files. The value is computed lazily, cached on the frame, and
// invalidated by LoadedConfig. An empty stack yields 0.
func (o *Owner) ConfigMtime() (int64, error) {
	var mtime int64
	var probeErr error

	err := o.sync("config_mtime", func(st *state) {
		if len(st.frames) == 0 {
			return
		}
		f := st.frames[0]
		if f.ConfigMtime != 0 {
			mtime = f.ConfigMtime
			return
		}
		m, err := o.timer.MaxMtime(f.ConfigFiles)
		if err != nil {
			probeErr = err
			return
		}
		f.ConfigMtime = m
		mtime = m
	})
	if err != nil {
		return 0, err
	}
	if probeErr != nil {
		return 0, zerr.Wrap(probeErr, "failed to probe config mtimes")
	}
	return mtime, nil
}

// ConfigApps returns the head frame's accumulated application
// identifiers, newest first. Empty on an empty stack.
func (o *Owner) ConfigApps() ([]string, error) {
	var apps []string
	err := o.sync("config_apps", func(st *state) {
		if len(st.frames) == 0 {
			return
		}
		apps = append([]string(nil), st.frames[0].ConfigApps...)
	})
	return apps, err
}

// ConfigFiles returns the head frame's contributing config files,
// newest first. Empty on an empty stack.
func (o *Owner) ConfigFiles() ([]string, error) {
	var files []string
	err := o.sync("config_files", func(st *state) {
		if len(st.frames) == 0 {
			return
		}
		files = append([]string(nil), st.frames[0].ConfigFiles...)
	})
	return files, err
}

// ReadCache returns the cached value for key and whether it was
// present. Keys use native Go equality; interned strings make cheap
// keys for repeated paths.
func (o *Owner) ReadCache(key any) (any, bool, error) {
	var val any
	var ok bool
	err := o.sync("read_cache", func(st *state) {
		val, ok = st.cache[key]
	})
	if err != nil {
		return nil, false, err
	}
	return val, ok, nil
}

// WriteCache stores val under key and returns val, enabling
// compute-or-fetch call sites. The write is fire-and-forget but is
// ordered before any later call from the same caller, so a subsequent
// ReadCache observes it. Entries live until deleted, cleared, or the
// owner closes; there is no eviction.
func (o *Owner) WriteCache(key, val any) any {
	o.async(func(st *state) {
		st.cache[key] = val
	})
	return val
}

// DeleteCache removes the entry for key if present. Fire-and-forget.
func (o *Owner) DeleteCache(key any) {
	o.async(func(st *state) {
		delete(st.cache, key)
	})
}

// ClearCache empties the general cache. The stack and pending overrides
// are untouched. Fire-and-forget.
func (o *Owner) ClearCache() {
	o.async(func(st *state) {
		st.cache = make(map[any]any)
	})
}
