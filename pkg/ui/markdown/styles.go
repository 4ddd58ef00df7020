package markdown

// DefaultStyle is the glamour style used for model responses. Code blocks keep
// chroma's monokai theme so fenced code reads the same as the extracted output.
var DefaultStyle = []byte(`{
  "document": {
    "block_prefix": "\n",
    "block_suffix": "\n",
    "margin": 0
  },
  "block_quote": {
    "indent": 1,
    "indent_token": "│ "
  },
  "paragraph": {
    "block_suffix": "\n"
  },
  "list": {
    "level_indent": 2
  },
  "heading": {
    "block_suffix": "\n",
    "color": "#00BFFF",
    "bold": true
  },
  "h1": {
    "prefix": "# ",
    "color": "#00BFFF",
    "bold": true
  },
  "h2": {
    "prefix": "## ",
    "color": "#00BFFF",
    "bold": true
  },
  "h3": {
    "prefix": "### "
  },
  "strong": {
    "bold": true
  },
  "emph": {
    "italic": true
  },
  "item": {
    "block_prefix": "• "
  },
  "enumeration": {
    "block_prefix": ". "
  },
  "code": {
    "color": "#E5C07B"
  },
  "code_block": {
    "margin": 2,
    "chroma": {
      "text": { "color": "#F8F8F2" },
      "keyword": { "color": "#F92672" },
      "name_function": { "color": "#A6E22E" },
      "literal_string": { "color": "#E6DB74" },
      "literal_number": { "color": "#AE81FF" },
      "comment": { "color": "#75715E" }
    }
  },
  "link": {
    "color": "#5F5FD7",
    "underline": true
  }
}`)
