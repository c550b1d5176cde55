package rules

// pythonStdlib is the default known-stdlib partition used by the import
// order rule when the configuration supplies none.
var pythonStdlib = map[string]struct{}{
	"__future__":        {},
	"__main__":          {},
	"abc":               {},
	"argparse":          {},
	"array":             {},
	"ast":               {},
	"asyncio":           {},
	"atexit":            {},
	"base64":            {},
	"bisect":            {},
	"builtins":          {},
	"bz2":               {},
	"calendar":          {},
	"cmath":             {},
	"cmd":               {},
	"code":              {},
	"codecs":            {},
	"collections":       {},
	"concurrent":        {},
	"configparser":      {},
	"contextlib":        {},
	"contextvars":       {},
	"copy":              {},
	"copyreg":           {},
	"csv":               {},
	"ctypes":            {},
	"curses":            {},
	"dataclasses":       {},
	"datetime":          {},
	"dbm":               {},
	"decimal":           {},
	"difflib":           {},
	"dis":               {},
	"distutils":         {},
	"doctest":           {},
	"email":             {},
	"encodings":         {},
	"enum":              {},
	"errno":             {},
	"fcntl":             {},
	"filecmp":           {},
	"fileinput":         {},
	"fnmatch":           {},
	"fractions":         {},
	"functools":         {},
	"gc":                {},
	"getopt":            {},
	"getpass":           {},
	"gettext":           {},
	"glob":              {},
	"gzip":              {},
	"hashlib":           {},
	"heapq":             {},
	"hmac":              {},
	"html":              {},
	"http":              {},
	"importlib":         {},
	"inspect":           {},
	"io":                {},
	"ipaddress":         {},
	"itertools":         {},
	"json":              {},
	"keyword":           {},
	"locale":            {},
	"logging":           {},
	"lzma":              {},
	"marshal":           {},
	"math":              {},
	"mimetypes":         {},
	"mmap":              {},
	"multiprocessing":   {},
	"numbers":           {},
	"operator":          {},
	"optparse":          {},
	"os":                {},
	"pathlib":           {},
	"pdb":               {},
	"pickle":            {},
	"pipes":             {},
	"pkgutil":           {},
	"platform":          {},
	"pprint":            {},
	"profile":           {},
	"pstats":            {},
	"pwd":               {},
	"py_compile":        {},
	"pydoc":             {},
	"queue":             {},
	"random":            {},
	"re":                {},
	"readline":          {},
	"reprlib":           {},
	"resource":          {},
	"runpy":             {},
	"sched":             {},
	"secrets":           {},
	"select":            {},
	"selectors":         {},
	"shelve":            {},
	"shlex":             {},
	"shutil":            {},
	"signal":            {},
	"site":              {},
	"smtplib":           {},
	"socket":            {},
	"sqlite3":           {},
	"ssl":               {},
	"stat":              {},
	"statistics":        {},
	"string":            {},
	"struct":            {},
	"subprocess":        {},
	"sys":               {},
	"sysconfig":         {},
	"syslog":            {},
	"tarfile":           {},
	"tempfile":          {},
	"test":              {},
	"textwrap":          {},
	"threading":         {},
	"time":              {},
	"timeit":            {},
	"tkinter":           {},
	"token":             {},
	"tokenize":          {},
	"trace":             {},
	"traceback":         {},
	"tracemalloc":       {},
	"tty":               {},
	"turtle":            {},
	"types":             {},
	"typing":            {},
	"typing_extensions": {},
	"unittest":          {},
	"urllib":            {},
	"uuid":              {},
	"venv":              {},
	"warnings":          {},
	"wave":              {},
	"weakref":           {},
	"webbrowser":        {},
	"xml":               {},
	"xmlrpc":            {},
	"zipfile":           {},
	"zlib":              {},
}
